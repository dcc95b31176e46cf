// Package index builds per-dataset content indexes: ordered multimaps from
// raw text to the question ids that reference it.
//
// One text string legitimately maps to several ids when identical contexts or
// question wordings recur across QA pairs, so values are append-only id lists
// rather than single ids. Questions without exactly one answer are excluded
// at every level; keeping one id per included item at all three levels is
// what lets contexts, questions, and answers share a single alignment
// strategy downstream.
package index
