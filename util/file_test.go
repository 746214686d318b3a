package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := WriteToFile(path, "one", "two"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(bs) != "one\ntwo\n" {
		t.Errorf("wrong content: %q", string(bs))
	}
}

func TestAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := AppendToFile(path, "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AppendToFile(path, "two"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(bs) != "one\ntwo\n" {
		t.Errorf("wrong content: %q", string(bs))
	}
}
