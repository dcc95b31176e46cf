// Package align recovers parallel (reference, translated) text pairs from two
// content indexes joined on shared question ids.
//
// Contexts pair on id-set intersection: translation workflows may split or
// merge paragraph boundaries, so requiring identical id lists would drop
// legitimately corresponding passages. Questions and answers pair on exact
// ordered id-list equality, the stricter predicate their one-id-per-item
// structure supports. After all three passes the reference and translation
// lists are deduplicated independently with first-occurrence order kept; the
// only property callers may rely on afterwards is equal length, which Result
// enforces.
package align
