package language

import "strings"

type entry struct {
	code2     string   // ISO 639-1 (2-letter)
	code3     string   // ISO 639-2 primary (3-letter)
	alt3      string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display   string   // Human-readable name
	words     []string // Full word forms (e.g. "english")
	segmented bool     // Script is written without word delimiters
}

// The segmented flag marks languages whose script carries no whitespace word
// boundaries and therefore needs tokenization before n-gram scoring. Only
// Chinese is flagged today; Japanese, Korean, and Thai datasets have not been
// evaluated through this tool.
var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}, false},
	{"es", "spa", "", "Spanish", []string{"spanish"}, false},
	{"fr", "fra", "fre", "French", []string{"french"}, false},
	{"de", "deu", "ger", "German", []string{"german"}, false},
	{"it", "ita", "", "Italian", []string{"italian"}, false},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}, false},
	{"ca", "cat", "", "Catalan", []string{"catalan"}, false},
	{"eu", "eus", "baq", "Basque", []string{"basque"}, false},
	{"gl", "glg", "", "Galician", []string{"galician"}, false},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}, false},
	{"ko", "kor", "", "Korean", []string{"korean"}, false},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}, true},
	{"ru", "rus", "", "Russian", []string{"russian"}, false},
	{"ar", "ara", "", "Arabic", []string{"arabic"}, false},
	{"hi", "hin", "", "Hindi", []string{"hindi"}, false},
	{"vi", "vie", "", "Vietnamese", []string{"vietnamese"}, false},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// NeedsSegmentation reports whether text in the given language must be
// word-segmented before whitespace-based scoring. Unrecognized codes are
// assumed to be whitespace-delimited.
func NeedsSegmentation(code string) bool {
	if e := lookup(code); e != nil {
		return e.segmented
	}
	return false
}
