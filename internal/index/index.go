package index

import (
	"log/slog"

	"tareval/internal/dataset"
	"tareval/internal/logging"
	"tareval/internal/textutil"
)

// Content holds the three indexes derived from one dataset. Contexts are
// keyed by their text with line breaks stripped; questions and answers are
// keyed by their text unmodified.
type Content struct {
	Contexts  *MultiMap
	Questions *MultiMap
	Answers   *MultiMap

	// Excluded counts questions dropped by the single-answer rule.
	Excluded int
}

// Builder constructs a Content index from a dataset. The zero value indexes
// contexts and questions only; set IncludeAnswers to index answer text too.
// A nil Logger disables progress reporting.
type Builder struct {
	IncludeAnswers bool
	Logger         *slog.Logger
}

// Build traverses every document, paragraph, and question. A question
// contributes its id to the indexes only when it has exactly one answer, so
// an id appears either at all indexed levels or at none.
func (b Builder) Build(ds *dataset.Dataset) *Content {
	content := &Content{
		Contexts:  NewMultiMap(),
		Questions: NewMultiMap(),
		Answers:   NewMultiMap(),
	}

	total := 0
	for _, doc := range ds.Data {
		total += len(doc.Paragraphs)
	}
	sampler := logging.NewProgressSampler(10)
	done := 0

	for _, doc := range ds.Data {
		for _, par := range doc.Paragraphs {
			context := textutil.StripLineBreaks(par.Context)
			for _, qa := range par.QAs {
				if len(qa.Answers) != 1 {
					content.Excluded++
					continue
				}
				content.Contexts.Append(context, qa.ID)
				content.Questions.Append(qa.Question, qa.ID)
				if b.IncludeAnswers {
					content.Answers.Append(qa.Answers[0].Text, qa.ID)
				}
			}
			done++
			if b.Logger != nil && sampler.ShouldLog(done, total) {
				b.Logger.Debug("indexing paragraphs",
					logging.Int("done", done),
					logging.Int("total", total),
				)
			}
		}
	}
	return content
}

// Build indexes ds with default options: answers included when includeAnswers
// is true, no progress logging.
func Build(ds *dataset.Dataset, includeAnswers bool) *Content {
	return Builder{IncludeAnswers: includeAnswers}.Build(ds)
}
