package bleu

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrEmptyCorpus reports a scoring request with zero segments. An empty
// alignment is a configuration problem, not a zero-quality translation, so it
// must never be reported as a score.
var ErrEmptyCorpus = errors.New("bleu: no segments to score")

const defaultMaxOrder = 4

// Options controls scoring behavior.
type Options struct {
	// MaxOrder is the largest n-gram order; 0 means the conventional 4.
	MaxOrder int
	// Smooth applies add-one smoothing to orders with no matches, keeping
	// short corpora from collapsing to zero on a single missing 4-gram.
	Smooth bool
}

// Corpus scores hypotheses against their references pairwise and returns
// BLEU as a percentage. The slices must be parallel and non-empty.
func Corpus(references, hypotheses []string, opts Options) (float64, error) {
	if len(references) != len(hypotheses) {
		return 0, fmt.Errorf("bleu: %d references vs %d hypotheses", len(references), len(hypotheses))
	}
	if len(references) == 0 {
		return 0, ErrEmptyCorpus
	}

	maxOrder := opts.MaxOrder
	if maxOrder <= 0 {
		maxOrder = defaultMaxOrder
	}

	matches := make([]float64, maxOrder)
	possible := make([]float64, maxOrder)
	var refLength, hypLength int

	for i := range hypotheses {
		refTokens := strings.Fields(references[i])
		hypTokens := strings.Fields(hypotheses[i])
		refLength += len(refTokens)
		hypLength += len(hypTokens)

		for n := 1; n <= maxOrder; n++ {
			refCounts := ngramCounts(refTokens, n)
			hypCounts := ngramCounts(hypTokens, n)
			for gram, count := range hypCounts {
				clipped := min(count, refCounts[gram])
				matches[n-1] += float64(clipped)
			}
			if total := len(hypTokens) - n + 1; total > 0 {
				possible[n-1] += float64(total)
			}
		}
	}

	if hypLength == 0 {
		return 0, nil
	}

	logSum := 0.0
	for n := 0; n < maxOrder; n++ {
		var precision float64
		switch {
		case matches[n] > 0:
			precision = matches[n] / possible[n]
		case opts.Smooth && possible[n] > 0:
			precision = 1 / (possible[n] + 1)
		default:
			return 0, nil
		}
		logSum += math.Log(precision) / float64(maxOrder)
	}

	brevity := 1.0
	if hypLength < refLength {
		brevity = math.Exp(1 - float64(refLength)/float64(hypLength))
	}

	return brevity * math.Exp(logSum) * 100, nil
}

// ngramCounts tallies the n-grams of order n in tokens.
func ngramCounts(tokens []string, n int) map[string]int {
	if len(tokens) < n {
		return nil
	}
	counts := make(map[string]int, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
