package store

import (
	"path/filepath"
	"testing"
)

const sampleProgram = `{"nodes": [{"id": 1, "shape": "Literal", "value": 2}]}`

func testStore(t *testing.T, s MetadataStore) {
	t.Helper()

	// Put and Get
	if err := s.Put("prog", sampleProgram); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := s.Get("prog")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != sampleProgram {
		t.Errorf("expected stored source back, got %q", got)
	}

	// Overwrite
	if err := s.Put("prog", `{"nodes": []}`); err != nil {
		t.Fatalf("Put overwrite failed: %v", err)
	}
	got, err = s.Get("prog")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if got != `{"nodes": []}` {
		t.Errorf("expected overwritten source, got %q", got)
	}

	// Missing name
	got, err = s.Get("missing")
	if err != nil {
		t.Fatalf("Get missing failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty source for missing name, got %q", got)
	}

	// Delete
	if err := s.Delete("prog"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err = s.Get("prog")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty source after delete, got %q", got)
	}

	// Metadata
	if err := s.SetMetadata("key", "value"); err != nil {
		t.Fatalf("SetMetadata failed: %v", err)
	}
	meta, err := s.GetMetadata("key")
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if meta != "value" {
		t.Errorf("expected metadata 'value', got %q", meta)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tael-test.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	testStore(t, s)

	// Reopen: data persists and the schema version checks out.
	if err := s.Put("kept", sampleProgram); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("kept")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got != sampleProgram {
		t.Errorf("expected persisted source, got %q", got)
	}

	version, err := s2.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %s, got %s", SchemaVersion, version)
	}
}

func TestSQLiteUnsupportedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tael-test.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	if err := s.SetMetadata("schema_version", "999"); err != nil {
		t.Fatalf("SetMetadata failed: %v", err)
	}
	s.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Error("expected error for unsupported schema version")
	}
}
