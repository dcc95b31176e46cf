package align

import (
	"errors"
	"reflect"
	"testing"

	"tareval/internal/dataset"
	"tareval/internal/index"
	"tareval/internal/testsupport"
)

func buildContent(t *testing.T, context string, includeAnswers bool, qas ...struct{ id, question, answer string }) *index.Content {
	t.Helper()
	ds := testsupport.SingleParagraph(context)
	for _, qa := range qas {
		ds.Data[0].Paragraphs[0].QAs = append(ds.Data[0].Paragraphs[0].QAs, testsupport.QA(qa.id, qa.question, qa.answer))
	}
	return index.Build(ds, includeAnswers)
}

func qa(id, question, answer string) struct{ id, question, answer string } {
	return struct{ id, question, answer string }{id, question, answer}
}

func TestPairsEndToEnd(t *testing.T) {
	ref := buildContent(t, "The cat sat.\n", true, qa("q1", "Who sat?", "The cat"))
	tra := buildContent(t, "Le chat était assis.", true, qa("q1", "Qui était assis ?", "Le chat"))

	result := Pairs(ref, tra)

	if err := result.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	wantRefs := []string{"The cat sat.", "Who sat?", "The cat"}
	wantTras := []string{"Le chat était assis.", "Qui était assis ?", "Le chat"}
	if !reflect.DeepEqual(result.References, wantRefs) {
		t.Errorf("References = %v, want %v", result.References, wantRefs)
	}
	if !reflect.DeepEqual(result.Translations, wantTras) {
		t.Errorf("Translations = %v, want %v", result.Translations, wantTras)
	}
	if result.ContextPairs != 1 || result.QuestionPairs != 1 || result.AnswerPairs != 1 {
		t.Errorf("pair counts = %d/%d/%d, want 1/1/1",
			result.ContextPairs, result.QuestionPairs, result.AnswerPairs)
	}
}

func TestContextIntersectionIsEnough(t *testing.T) {
	// Reference has one merged paragraph covering q1+q2; translation split it
	// into two paragraphs. Both translated contexts share an id with the
	// reference context, so both pair with it.
	refDS := testsupport.SingleParagraph("merged passage",
		testsupport.QA("q1", "one?", "a1"),
		testsupport.QA("q2", "two?", "a2"),
	)
	traDS := testsupport.Paragraphs(
		splitParagraph("premier passage", "q1", "un ?", "r1"),
		splitParagraph("second passage", "q2", "deux ?", "r2"),
	)

	result := Pairs(index.Build(refDS, false), index.Build(traDS, false))

	if result.ContextPairs != 2 {
		t.Errorf("ContextPairs = %d, want 2", result.ContextPairs)
	}
	// Dedup keeps one copy of the merged reference context.
	if err := result.Check(); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("asymmetric dedup must fail Check, got %v", err)
	}
}

func TestContextPredicateSymmetric(t *testing.T) {
	ref := buildContent(t, "shared", false, qa("q1", "q?", "a"), qa("q2", "p?", "b"))
	tra := buildContent(t, "partagé", false, qa("q2", "r?", "c"), qa("q3", "s?", "d"))

	forward := Pairs(ref, tra)
	backward := Pairs(tra, ref)

	if forward.ContextPairs != 1 || backward.ContextPairs != 1 {
		t.Errorf("context pairs forward=%d backward=%d, want 1/1",
			forward.ContextPairs, backward.ContextPairs)
	}
	if !reflect.DeepEqual(forward.References[:1], []string{"shared"}) {
		t.Errorf("forward references = %v", forward.References)
	}
	if !reflect.DeepEqual(backward.References[:1], []string{"partagé"}) {
		t.Errorf("backward references = %v", backward.References)
	}
}

func TestQuestionRequiresExactSequence(t *testing.T) {
	// ref ids [q1 q2] vs tra ids [q1 q3]: overlap but not equality, no pair.
	refDS := testsupport.Paragraphs(
		splitParagraph("c1", "q1", "Same wording?", "a1"),
		splitParagraph("c2", "q2", "Same wording?", "a2"),
	)
	traDS := testsupport.Paragraphs(
		splitParagraph("t1", "q1", "Même texte ?", "r1"),
		splitParagraph("t2", "q3", "Même texte ?", "r2"),
	)

	result := Pairs(index.Build(refDS, false), index.Build(traDS, false))

	if result.QuestionPairs != 0 {
		t.Errorf("QuestionPairs = %d, want 0 for overlapping but unequal id lists", result.QuestionPairs)
	}
}

func TestQuestionOrderMatters(t *testing.T) {
	refDS := testsupport.Paragraphs(
		splitParagraph("c1", "q1", "Repeated?", "a1"),
		splitParagraph("c2", "q2", "Repeated?", "a2"),
	)
	traDS := testsupport.Paragraphs(
		splitParagraph("t1", "q2", "Répété ?", "r1"),
		splitParagraph("t2", "q1", "Répété ?", "r2"),
	)

	result := Pairs(index.Build(refDS, false), index.Build(traDS, false))

	// [q1 q2] vs [q2 q1]: same members, different order, no pair.
	if result.QuestionPairs != 0 {
		t.Errorf("QuestionPairs = %d, want 0 for reordered id lists", result.QuestionPairs)
	}
}

func TestAnswersCompareReferenceAgainstTranslation(t *testing.T) {
	ref := buildContent(t, "c", true, qa("q1", "q?", "reference answer"))
	tra := buildContent(t, "t", true, qa("q1", "r?", "translated answer"))

	result := Pairs(ref, tra)

	if result.AnswerPairs != 1 {
		t.Fatalf("AnswerPairs = %d, want 1", result.AnswerPairs)
	}
	if result.References[2] != "reference answer" || result.Translations[2] != "translated answer" {
		t.Errorf("answer pair = (%q, %q), want reference vs translation",
			result.References[2], result.Translations[2])
	}
}

func TestExclusionIsIndependentPerDataset(t *testing.T) {
	// q1 has two answers on the reference side, one on the translated side.
	// It must contribute to neither dataset's aligned output: the reference
	// index drops it, so no predicate can match it.
	refDS := testsupport.SingleParagraph("c",
		testsupport.QAWithAnswers("q1", "Dropped?", "a", "b"),
	)
	traDS := testsupport.SingleParagraph("t",
		testsupport.QA("q1", "Gardé ?", "r"),
	)

	result := Pairs(index.Build(refDS, true), index.Build(traDS, true))

	if !result.Empty() {
		t.Errorf("expected no pairs, got refs=%v tras=%v", result.References, result.Translations)
	}
}

func TestNoAnswerIndexMeansNoAnswerPairs(t *testing.T) {
	ref := buildContent(t, "c", false, qa("q1", "q?", "a"))
	tra := buildContent(t, "t", false, qa("q1", "r?", "b"))

	result := Pairs(ref, tra)

	if result.AnswerPairs != 0 {
		t.Errorf("AnswerPairs = %d, want 0 when answers are not indexed", result.AnswerPairs)
	}
	if result.ContextPairs != 1 || result.QuestionPairs != 1 {
		t.Errorf("context/question pairs = %d/%d, want 1/1 unaffected",
			result.ContextPairs, result.QuestionPairs)
	}
}

func TestSameSequence(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{"both empty", nil, nil, true},
		{"equal", []string{"1", "2"}, []string{"1", "2"}, true},
		{"different length", []string{"1"}, []string{"1", "2"}, false},
		{"overlap only", []string{"1", "2"}, []string{"1", "3"}, false},
		{"reordered", []string{"1", "2"}, []string{"2", "1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameSequence(tt.a, tt.b); got != tt.expected {
				t.Errorf("sameSequence(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{"both empty", nil, nil, false},
		{"one empty", []string{"1"}, nil, false},
		{"shared", []string{"1", "2"}, []string{"2", "3"}, true},
		{"disjoint", []string{"1", "2"}, []string{"3", "4"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intersects(tt.a, tt.b); got != tt.expected {
				t.Errorf("intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			if got := intersects(tt.b, tt.a); got != tt.expected {
				t.Errorf("intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestOrderedSet(t *testing.T) {
	set := NewOrderedSet()
	for _, v := range []string{"b", "a", "b", "c"} {
		set.Add(v)
	}
	if got := set.Items(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Items() = %v, want [b a c]", got)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if set.Add("a") {
		t.Error("Add of duplicate should report false")
	}
	if !set.Add("d") {
		t.Error("Add of new value should report true")
	}
}

func splitParagraph(context, id, question, answer string) dataset.Paragraph {
	return dataset.Paragraph{Context: context, QAs: []dataset.QA{testsupport.QA(id, question, answer)}}
}
