// Package language provides unified language code normalization.
//
// All language-related conversions (ISO 639-1, ISO 639-2, display names,
// segmentation requirements) are consolidated here so the CLI and the
// tokenizer agree on what a --lang value means.
package language
