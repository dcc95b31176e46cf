// Package tokenize prepares aligned text for whitespace-based BLEU scoring.
//
// Whitespace-delimited languages pass through untouched. Languages whose
// script carries no word boundaries (Chinese) are NFKC-normalized and split
// into Unicode words per UAX #29, which yields one token per ideograph, then
// rejoined with single spaces.
package tokenize
