package flatten

import "fmt"

type cursor[T any] struct {
	items []Node[T]
	next  int
}

// Flattener appends the accepted leaves of nested input to a flat slice.
// It keeps its traversal stack between calls, so one Flattener can be reused
// for many small inputs without reallocating. A Flattener is not safe for
// concurrent use.
type Flattener[T, U any] struct {
	// Filter selects the leaves to keep. Nil keeps every leaf.
	Filter func(T) bool
	// Map converts a kept leaf into an output element. It must not be nil.
	Map func(T) U
	// MaxDepth limits how many sequence levels may be entered.
	// A bare sequence has depth 1. Zero means unlimited.
	MaxDepth int

	stack []cursor[T]
}

// Append flattens input and appends the results to dst, returning the
// extended slice. dst may be nil. On ErrDepthExceeded the returned slice holds
// the leaves visited before the limit was hit.
func (f *Flattener[T, U]) Append(dst []U, input Node[T]) ([]U, error) {
	if f.Map == nil {
		return dst, ErrNilMap
	}

	if !input.seq {
		if f.keep(input.value) {
			dst = append(dst, f.Map(input.value))
		}
		return dst, nil
	}

	stack := append(f.stack[:0], cursor[T]{items: input.items})
	defer func() {
		// Drop node references so the stack does not pin caller data.
		clear(stack[:cap(stack)])
		f.stack = stack[:0]
	}()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.items[top.next]
		top.next++

		if n.seq {
			if f.MaxDepth > 0 && len(stack) >= f.MaxDepth {
				return dst, fmt.Errorf("%w: limit %d", ErrDepthExceeded, f.MaxDepth)
			}
			stack = append(stack, cursor[T]{items: n.items})
			continue
		}

		if f.keep(n.value) {
			dst = append(dst, f.Map(n.value))
		}
	}

	return dst, nil
}

func (f *Flattener[T, U]) keep(v T) bool {
	return f.Filter == nil || f.Filter(v)
}

// AppendMapped flattens input, keeping leaves accepted by filter (nil keeps
// all) and appending transform(leaf) to dst. maxDepth of zero is unlimited.
func AppendMapped[T, U any](dst []U, input Node[T], filter func(T) bool, transform func(T) U, maxDepth int) ([]U, error) {
	f := Flattener[T, U]{Filter: filter, Map: transform, MaxDepth: maxDepth}
	return f.Append(dst, input)
}

// Option configures Flatten.
type Option[T any] func(*config[T])

type config[T any] struct {
	filter   func(T) bool
	mapFn    func(T) T
	result   []T
	maxDepth int
}

// WithFilter keeps only leaves for which keep returns true.
func WithFilter[T any](keep func(T) bool) Option[T] {
	return func(cfg *config[T]) {
		if keep != nil {
			cfg.filter = keep
		}
	}
}

// WithMap transforms every kept leaf.
func WithMap[T any](fn func(T) T) Option[T] {
	return func(cfg *config[T]) {
		if fn != nil {
			cfg.mapFn = fn
		}
	}
}

// WithResult appends to result instead of a freshly allocated slice.
// The returned slice may share result's backing array.
func WithResult[T any](result []T) Option[T] {
	return func(cfg *config[T]) {
		cfg.result = result
	}
}

// WithMaxDepth rejects input nested deeper than depth sequence levels.
// Negative values are ignored; zero means unlimited.
func WithMaxDepth[T any](depth int) Option[T] {
	return func(cfg *config[T]) {
		if depth >= 0 {
			cfg.maxDepth = depth
		}
	}
}

func identity[T any](v T) T { return v }

// Flatten returns the leaves of input in pre-order, left-to-right.
//
//	Flatten(Seq(Seq(Leaf(1), Seq(Leaf(2))), Seq(Leaf(3)), Leaf(4))) => [1 2 3 4]
//	Flatten(Leaf(1)) => [1]
func Flatten[T any](input Node[T], opts ...Option[T]) ([]T, error) {
	cfg := config[T]{mapFn: identity[T]}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.result == nil {
		cfg.result = make([]T, 0, Count(input))
	}

	return AppendMapped(cfg.result, input, cfg.filter, cfg.mapFn, cfg.maxDepth)
}
