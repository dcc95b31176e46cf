// Package evaluate orchestrates a full scoring run: load both datasets,
// index them, align, tokenize when the language requires it, write the
// aligned lists and the BLEU score to the output directory.
//
// A run is a one-shot sequential batch; the only cross-process coordination
// is a lock file in the output directory so concurrent runs cannot interleave
// artifacts.
package evaluate
