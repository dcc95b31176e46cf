// Package testsupport provides fixtures shared by package tests: small
// in-memory datasets, JSON files on disk, and preconfigured Config values.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tareval/internal/dataset"
)

// QA builds a question with exactly one answer.
func QA(id, question, answer string) dataset.QA {
	return dataset.QA{
		ID:       id,
		Question: question,
		Answers:  []dataset.Answer{{Text: answer}},
	}
}

// QAWithAnswers builds a question with an arbitrary answer count, for
// exercising the single-answer exclusion rule.
func QAWithAnswers(id, question string, answers ...string) dataset.QA {
	qa := dataset.QA{ID: id, Question: question}
	for _, text := range answers {
		qa.Answers = append(qa.Answers, dataset.Answer{Text: text})
	}
	return qa
}

// SingleParagraph builds a dataset with one document holding one paragraph.
func SingleParagraph(context string, qas ...dataset.QA) *dataset.Dataset {
	return &dataset.Dataset{
		Data: []dataset.Document{
			{Paragraphs: []dataset.Paragraph{{Context: context, QAs: qas}}},
		},
	}
}

// Paragraphs builds a dataset with one document holding the given paragraphs.
func Paragraphs(paragraphs ...dataset.Paragraph) *dataset.Dataset {
	return &dataset.Dataset{
		Data: []dataset.Document{{Paragraphs: paragraphs}},
	}
}

// WriteDataset serializes ds to name inside dir and returns the file path.
func WriteDataset(t testing.TB, dir, name string, ds *dataset.Dataset) string {
	t.Helper()

	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write dataset %s: %v", path, err)
	}
	return path
}
