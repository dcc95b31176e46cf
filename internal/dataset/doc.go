// Package dataset models SQuAD-shaped question-answering corpora and loads
// them eagerly from JSON.
//
// The loader is strict: malformed JSON or structurally incomplete records
// (a paragraph without qas, a question without an id) fail the whole load.
// Question ids are the join key for cross-dataset alignment, so silently
// skipping a bad record could misalign scoring without any visible symptom.
package dataset
