package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"empty", nil, ""},
		{"single", []string{"The cat sat."}, "The cat sat.\n"},
		{"multiple", []string{"a", "b", "c"}, "a\nb\nc\n"},
		{"preserves interior spaces", []string{"Le chat était assis."}, "Le chat était assis.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			if err := WriteLines(path, tt.lines); err != nil {
				t.Fatalf("WriteLines: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("file content = %q, want %q", string(data), tt.expected)
			}
		})
	}
}

func TestWriteLinesOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteLines(path, []string{"old", "content", "longer"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if err := WriteLines(path, []string{"new"}); err != nil {
		t.Fatalf("WriteLines overwrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new\n" {
		t.Errorf("file content = %q, want %q", string(data), "new\n")
	}
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bleu.txt")
	if err := WriteFileAtomic(path, []byte("BLEU = 12.34"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("WriteFileAtomic into a missing directory should fail")
	}
}
