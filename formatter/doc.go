// Package formatter serializes rendered Sh-Data documents.
//
// This package is organized into:
// - xml.go: XML assembly with schema-contract auditing
// - json.go: JSON serialization for the OAM surface
//
// XML serialization is done manually for precise control over element order
// and output format; the assembler re-checks the renderer's output against
// the presence policy table before writing a single byte.
package formatter
