package flatten

// Node is either a scalar leaf or an ordered sequence of nodes.
// The zero Node is a leaf holding the zero value of T.
type Node[T any] struct {
	value T
	items []Node[T]
	seq   bool
}

// Leaf returns a scalar node.
func Leaf[T any](v T) Node[T] {
	return Node[T]{value: v}
}

// Seq returns a sequence node containing items. An empty call yields an
// empty sequence, which flattens to nothing.
func Seq[T any](items ...Node[T]) Node[T] {
	return Node[T]{items: items, seq: true}
}

// FromSlice returns a sequence of leaves, one per element of values.
func FromSlice[T any](values []T) Node[T] {
	items := make([]Node[T], len(values))
	for i, v := range values {
		items[i] = Leaf(v)
	}
	return Seq(items...)
}

// FromMatrix returns a sequence of sequences, one per row.
func FromMatrix[T any](rows [][]T) Node[T] {
	items := make([]Node[T], len(rows))
	for i, row := range rows {
		items[i] = FromSlice(row)
	}
	return Seq(items...)
}

// IsSeq reports whether n is a sequence.
func (n Node[T]) IsSeq() bool {
	return n.seq
}

// Value returns the scalar held by a leaf. For sequences it returns the zero value.
func (n Node[T]) Value() T {
	return n.value
}

// Items returns the children of a sequence. For leaves it returns nil.
// The returned slice aliases the node; callers must not modify it.
func (n Node[T]) Items() []Node[T] {
	return n.items
}

// Count returns the number of leaves reachable from n.
func Count[T any](n Node[T]) int {
	if !n.seq {
		return 1
	}

	count := 0
	stack := [][]Node[T]{n.items}
	for len(stack) > 0 {
		items := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, item := range items {
			if item.seq {
				stack = append(stack, item.items)
			} else {
				count++
			}
		}
	}
	return count
}
