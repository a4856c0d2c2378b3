// Package flatten linearizes arbitrarily nested sequences into a flat slice.
//
// A nested value is modelled by Node: either a leaf holding a scalar or a
// sequence of further nodes. Flattening visits leaves in pre-order,
// left-to-right, optionally filtering and transforming each one, and appends
// the results to a caller-supplied accumulator when one is given.
//
// Traversal uses an explicit heap-allocated stack, so deep nesting cannot
// exhaust the goroutine stack. Cyclic input cannot be built from Node values
// constructed with Leaf and Seq; very deep input can be rejected with
// WithMaxDepth.
package flatten
