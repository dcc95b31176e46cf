// Package bleu computes corpus-level BLEU: clipped n-gram precision up to a
// configurable order, combined by geometric mean and scaled by the brevity
// penalty. Text is split on whitespace, so segmented-script input must be
// tokenized before scoring.
package bleu
