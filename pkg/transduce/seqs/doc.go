// Package seqs provides a lazy, single-pass stream abstraction over the
// standard library's iter.Seq.
//
// A Seq[T] produces its values on demand and can be consumed exactly
// once. Consuming an already-consumed Seq is a logical error and panics;
// it is never a silent no-op.
//
// Highlights:
// - From/FromSlice/Of/Empty: construct a Seq
// - All: the single allowed iteration over the values
// - Collect: drain into a slice and report any deferred stage error
// - Map/Filter and MapErr/FilterErr: derive new lazy Seqs
// - Err: deferred error from a failed stage function
//
// Stage functions run lazily, so their errors cannot be returned at
// construction time. A failing stage stops the stream and records its
// error on the Seq, to be checked after iteration in the bufio.Scanner
// manner.
package seqs
