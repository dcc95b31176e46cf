// Package textutil provides small text normalization helpers shared by the
// indexing and tokenization layers.
//
// Translation pipelines reflow passage text and may insert or remove line
// breaks at wrap points, so contexts are compared with line breaks stripped.
// The helpers here are pure string transforms with no locale awareness.
package textutil
