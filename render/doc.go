// Package render is the main entry point for Sh-Data profile rendering.
//
// The Renderer maps a validated subscriber.Record onto the fixed three-block
// Sh-Data document shape: the identity block, the EPS location extension
// block, and the Sh-IMS-Data service block.
//
// # Overview
//
// Rendering walks the schema in a fixed order. Every leaf consults the
// presence policy table in package shdoc:
//   - required leaves fail the render when their datum is absent
//   - optional-emit-empty leaves render an empty element when absent
//   - optional-omit leaves disappear when absent
//
// Optional blocks (the location extension, CallForwarding, the vendor
// extension) are included or excluded as a whole. An absent block never
// leaves an empty shell behind, and a nested block's condition is never
// evaluated when its parent block is absent — the tree is simply built
// top-down.
//
// # Usage
//
//	r := render.NewRenderer(render.Options{DefaultAgeOfLocation: 0})
//	doc, err := r.Render(rec)
//	if err != nil {
//	    // *subscriber.ValidationError or *shdoc.EncodingError
//	}
//	xml, err := formatter.BuildXML(doc)
//
// # Thread Safety
//
// Render is a pure function of its input: no I/O, no shared mutable state.
// A single Renderer may be used from any number of goroutines.
package render
