package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Dataset is the top-level SQuAD document: an ordered sequence of articles,
// each holding paragraphs with question-answer pairs.
type Dataset struct {
	Version string     `json:"version,omitempty"`
	Data    []Document `json:"data"`
}

// Document groups the paragraphs of one source article. The title is carried
// through from the JSON but never indexed; titles are not training inputs.
type Document struct {
	Title      string      `json:"title,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph is a passage of source text plus the questions asked about it.
type Paragraph struct {
	Context string `json:"context"`
	QAs     []QA   `json:"qas"`
}

// QA is a single question with its identifier and candidate answers. The id
// is shared between a reference dataset and its translated counterpart and is
// the only signal that two texts describe the same underlying content.
type QA struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

// Answer is one answer span. The start offset is part of the SQuAD schema but
// plays no role in alignment.
type Answer struct {
	Text        string `json:"text"`
	AnswerStart int    `json:"answer_start,omitempty"`
}

// Stats summarizes a dataset for logging and the index command.
type Stats struct {
	Documents    int
	Paragraphs   int
	Questions    int
	SingleAnswer int
}

// Load reads and decodes a dataset file, then validates its structure.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	var ds Dataset
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	if len(ds.Data) == 0 {
		return fmt.Errorf("no data entries")
	}
	for di, doc := range ds.Data {
		for pi, par := range doc.Paragraphs {
			if strings.TrimSpace(par.Context) == "" {
				return fmt.Errorf("data[%d].paragraphs[%d]: missing context", di, pi)
			}
			for qi, qa := range par.QAs {
				if strings.TrimSpace(qa.ID) == "" {
					return fmt.Errorf("data[%d].paragraphs[%d].qas[%d]: missing question id", di, pi, qi)
				}
			}
		}
	}
	return nil
}

// Stats walks the dataset and counts documents, paragraphs, and questions.
func (ds *Dataset) Stats() Stats {
	var s Stats
	s.Documents = len(ds.Data)
	for _, doc := range ds.Data {
		s.Paragraphs += len(doc.Paragraphs)
		for _, par := range doc.Paragraphs {
			s.Questions += len(par.QAs)
			for _, qa := range par.QAs {
				if len(qa.Answers) == 1 {
					s.SingleAnswer++
				}
			}
		}
	}
	return s
}
