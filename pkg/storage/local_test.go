package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	s, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func writeString(t *testing.T, s FileStore, path, data string) {
	t.Helper()
	w, err := s.Write(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func readString(t *testing.T, s FileStore, path string) string {
	t.Helper()
	r, err := s.Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(got)
}

func TestWriteAndRead(t *testing.T) {
	s := newTestLocal(t)
	writeString(t, s, "scores_data.json", `{"scores":[]}`)
	if got := readString(t, s, "scores_data.json"); got != `{"scores":[]}` {
		t.Fatalf("got %q", got)
	}
}

func TestWriteTruncates(t *testing.T) {
	s := newTestLocal(t)
	writeString(t, s, "f.json", "a much longer first version")
	writeString(t, s, "f.json", "short")
	if got := readString(t, s, "f.json"); got != "short" {
		t.Fatalf("got %q, want %q", got, "short")
	}
}

func TestReadNotExist(t *testing.T) {
	s := newTestLocal(t)
	_, err := s.Read(context.Background(), "no-such-file")
	if !os.IsNotExist(err) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestNewLocalCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "out")
	s, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("expected directory")
	}
	if s.Location() != dir {
		t.Fatalf("Location() = %q, want %q", s.Location(), dir)
	}
}

func TestNewLocalUnderFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLocal(filepath.Join(file, "out")); err == nil {
		t.Fatal("expected error creating a directory beneath a file")
	}
}
