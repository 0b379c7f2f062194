// Package transduce links callables into ordered transformation
// pipelines and evaluates them by piping a value through.
//
// The building block is the Unit, one labeled transformation step. The
// Chain composes Units and decides, per operand, whether to keep
// building the pipeline or to run it: composing with a callable extends
// the chain, piping a plain value through Backward evaluates every step
// in order and returns the final result.
//
// Key operations:
// - Call/Map/Filter/Reduce: factories producing single-step chains
// - Forward: append a callable as the next step (chain >> fn)
// - Backward: prepend a callable, or evaluate against a value (v >> chain)
// - Combine/FromOperand: the underlying composition mechanics
// - Apply: named full evaluation entry point
// - Invoke: direct call, which runs the first step only
//
// Map and Filter produce lazy, single-pass sequences from the seqs
// package; nothing is computed until the result is consumed, and an
// exhausted sequence cannot be consumed again. Reduce folds eagerly,
// strictly left to right.
//
// Chains are immutable: composition allocates new chains and never
// mutates its operands, so a chain stays reusable after a failed
// evaluation.
package transduce
