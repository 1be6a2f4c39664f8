// Package shdoc defines the Sh-Data document model shared by the renderer
// and the assembler.
//
// It contains the element tree types, the field-presence policy table that
// classifies every leaf of the Sh-Data schema (required, optional-emit-empty,
// optional-omit), and the value escaper applied to every substituted scalar.
package shdoc
