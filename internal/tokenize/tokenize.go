package tokenize

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"tareval/internal/language"
)

// Segment returns text ready for whitespace splitting. For languages that
// need segmentation the text is normalized and word-segmented; for all others
// it is returned unchanged.
func Segment(text, lang string) string {
	if !language.NeedsSegmentation(lang) {
		return text
	}
	return segmentWords(text)
}

// SegmentAll applies Segment to every line, returning the input slice
// untouched when the language needs no segmentation.
func SegmentAll(lines []string, lang string) []string {
	if !language.NeedsSegmentation(lang) {
		return lines
	}
	segmented := make([]string, len(lines))
	for i, line := range lines {
		segmented[i] = segmentWords(line)
	}
	return segmented
}

func segmentWords(text string) string {
	normalized := norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(normalized) + len(normalized)/2)

	state := -1
	first := true
	remaining := normalized
	for len(remaining) > 0 {
		var word string
		word, remaining, state = uniseg.FirstWordInString(remaining, state)
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		first = false
	}
	return b.String()
}
