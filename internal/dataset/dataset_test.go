package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const validDataset = `{
  "version": "1.1",
  "data": [
    {
      "title": "Cats",
      "paragraphs": [
        {
          "context": "The cat sat.",
          "qas": [
            {"id": "q1", "question": "Who sat?", "answers": [{"text": "The cat", "answer_start": 0}]},
            {"id": "q2", "question": "What did the cat do?", "answers": [
              {"text": "sat", "answer_start": 8},
              {"text": "sat.", "answer_start": 8}
            ]}
          ]
        }
      ]
    }
  ]
}`

func TestLoad(t *testing.T) {
	path := writeFile(t, validDataset)
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(ds.Data))
	}
	par := ds.Data[0].Paragraphs[0]
	if par.Context != "The cat sat." {
		t.Errorf("Context = %q", par.Context)
	}
	if len(par.QAs) != 2 {
		t.Fatalf("len(QAs) = %d, want 2", len(par.QAs))
	}
	if par.QAs[0].ID != "q1" || par.QAs[0].Answers[0].Text != "The cat" {
		t.Errorf("unexpected first qa: %+v", par.QAs[0])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"data": [`},
		{"not an object", `[1, 2, 3]`},
		{"empty data", `{"data": []}`},
		{"missing data", `{"version": "1.1"}`},
		{"blank context", `{"data": [{"paragraphs": [{"context": " ", "qas": []}]}]}`},
		{"missing question id", `{"data": [{"paragraphs": [{"context": "c", "qas": [{"question": "q?", "answers": []}]}]}]}`},
		{"blank question id", `{"data": [{"paragraphs": [{"context": "c", "qas": [{"id": "  ", "question": "q?", "answers": []}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("Load should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load of missing file should fail")
	}
}

func TestStats(t *testing.T) {
	path := writeFile(t, validDataset)
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	stats := ds.Stats()
	expected := Stats{Documents: 1, Paragraphs: 1, Questions: 2, SingleAnswer: 1}
	if stats != expected {
		t.Errorf("Stats() = %+v, want %+v", stats, expected)
	}
}
