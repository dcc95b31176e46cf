package align

import (
	"errors"
	"fmt"
	"log/slog"

	"tareval/internal/index"
	"tareval/internal/logging"
)

// ErrLengthMismatch reports asymmetric deduplication: the reference and
// translation lists ended up with different lengths, so any score computed
// over them would silently compare unrelated segments.
var ErrLengthMismatch = errors.New("align: references and translations are not aligned")

// Result carries the aligned output lists plus per-pass pair counts recorded
// before deduplication, which make asymmetric dedup diagnosable.
type Result struct {
	References   []string
	Translations []string

	ContextPairs  int
	QuestionPairs int
	AnswerPairs   int
}

// Check verifies the alignment invariant: both lists have equal length.
// Callers must treat a failure as fatal rather than score over the lists.
func (r *Result) Check() error {
	if len(r.References) != len(r.Translations) {
		return fmt.Errorf("%w: %d references vs %d translations",
			ErrLengthMismatch, len(r.References), len(r.Translations))
	}
	return nil
}

// Empty reports whether alignment produced no pairs at all.
func (r *Result) Empty() bool {
	return len(r.References) == 0 && len(r.Translations) == 0
}

// Aligner joins a reference index against a translated index. A nil Logger
// disables per-pair debug output.
type Aligner struct {
	Logger *slog.Logger
}

// Pairs runs the three alignment passes and deduplicates the accumulated
// lists. The reference dataset's index must be the first argument; swapping
// the arguments swaps which side lands in References vs Translations but
// never changes which pairs are found.
func (a Aligner) Pairs(ref, tra *index.Content) *Result {
	result := &Result{}
	var references, translations []string

	emit := func(refText, traText string) {
		references = append(references, refText)
		translations = append(translations, traText)
		if a.Logger != nil {
			a.Logger.Debug("aligned pair",
				logging.String("ref", refText),
				logging.String("tra", traText),
			)
		}
	}

	// Contexts: paragraph boundaries can shift in translation, so a single
	// shared id is enough to pair two passages.
	for _, refText := range ref.Contexts.Keys() {
		refIDs := ref.Contexts.IDs(refText)
		for _, traText := range tra.Contexts.Keys() {
			if intersects(refIDs, tra.Contexts.IDs(traText)) {
				emit(refText, traText)
				result.ContextPairs++
			}
		}
	}

	// Questions and answers: one id per included item, so the id lists of
	// corresponding texts must match exactly, in order.
	for _, refText := range ref.Questions.Keys() {
		refIDs := ref.Questions.IDs(refText)
		for _, traText := range tra.Questions.Keys() {
			if sameSequence(refIDs, tra.Questions.IDs(traText)) {
				emit(refText, traText)
				result.QuestionPairs++
			}
		}
	}

	for _, refText := range ref.Answers.Keys() {
		refIDs := ref.Answers.IDs(refText)
		for _, traText := range tra.Answers.Keys() {
			if sameSequence(refIDs, tra.Answers.IDs(traText)) {
				emit(refText, traText)
				result.AnswerPairs++
			}
		}
	}

	result.References = dedupe(references)
	result.Translations = dedupe(translations)
	return result
}

// Pairs aligns ref against tra with default options.
func Pairs(ref, tra *index.Content) *Result {
	return Aligner{}.Pairs(ref, tra)
}

// intersects reports whether the two id lists share at least one id.
func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	set := make(map[string]struct{}, len(small))
	for _, id := range small {
		set[id] = struct{}{}
	}
	for _, id := range large {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// sameSequence reports whether the two id lists are identical element for
// element. Overlap without full ordered equality does not qualify.
func sameSequence(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupe(values []string) []string {
	set := NewOrderedSet()
	for _, value := range values {
		set.Add(value)
	}
	return set.Items()
}
