// Package buffer provides a reusable generic buffer type, a pool, and the
// doubling-copy replicator used to tile short attribute patterns (a constant
// color, a per-object offset) across many instances.
//
// Replicate fills count consecutive copies of a source pattern with
// 1 + O(log2 count) bulk copies instead of one copy per repetition. Each
// doubling step only reads the already-written prefix of the destination, so
// the overlapping in-place copies are safe with Go's memmove-style copy.
package buffer
