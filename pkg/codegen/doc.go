// Package codegen compiles an Object Dictionary into C storage declarations,
// initializers and an object-descriptor lookup table for the embedded stack.
//
// The compiler runs a single forward pass over the enabled objects of a
// dictionary in ascending index order. Each object is encoded (pkg/od data
// type + raw default value -> byte-accurate C literal), validated against its
// shape rules (VAR/ARRAY/RECORD) and folded into per-run aggregation state:
// storage groups, descriptors, shortcut macros and category counters.
//
// All diagnostics are non-fatal build warnings delivered through an injected
// WarningSink; a malformed value downgrades its object to "no storage" and
// the pass always completes. The only objects excluded from the output
// entirely are ARRAYs and RECORDs with fewer than two sub-entries.
//
// Basic usage:
//
//	sink := &codegen.ListSink{}
//	c := codegen.Compiler{Hints: codegen.FixedHinter(8), Sink: sink}
//	out, err := c.Compile(dict)
//	if err != nil {
//	    // structural input violation, out is nil
//	}
//	header, source := codegen.EmitC(out)
//
// A Compiler holds no state between runs; independent runs over independent
// dictionaries may execute concurrently.
package codegen
