package textutil

import "strings"

// lineBreakReplacer removes newline and carriage-return characters.
var lineBreakReplacer = strings.NewReplacer(
	"\n", "",
	"\r", "",
)

// StripLineBreaks removes "\n" and "\r" from text. Used to normalize passage
// contexts before they become index keys, since reformatting during
// translation can move or drop wrap points.
func StripLineBreaks(text string) string {
	if !strings.ContainsAny(text, "\n\r") {
		return text
	}
	return lineBreakReplacer.Replace(text)
}
