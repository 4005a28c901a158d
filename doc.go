package ngff

// Package ngff provides:
//
// - A typed model of OME-NGFF image metadata (axes, coordinate transformations,
//   multiscale pyramids, plates, wells, image labels)
// - Validators enforcing the structural rules of the format, reporting the
//   first violation via a stable error model (Issues: JSON Pointer, code, message)
// - A coordinate-transform engine that applies and inverts transforms over a
//   pyramid level with a round-trip guarantee
//
// Design policy:
// - Keep shared primitives (error model, dimensionality, resolver) in the root
//   package; place the versioned document model under v04/, document codecs
//   under codec/, and the CLI under cmd/ngff-validate.
// - Types are plain data, not always-valid: a document can be decoded,
//   inspected and repaired before validation. Invariants are enforced only by
//   Validate calls.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	meta, err := codec.DecodeJSON(data)
//	if err := meta.Validate(); err != nil { ... }
//
//	ap := v04.Applier{}
//	err = ap.ApplyLevel(ms, 0, coord)
