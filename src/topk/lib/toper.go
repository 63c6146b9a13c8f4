package topk

// Toper keeps the k best values seen so far. The comparer must return a
// positive number when its first argument ranks worse than the second, so the
// heap top is always the worst value kept.
type Toper[T comparable] struct {
	heap *heap[T]
	k    int
}

func NewToper[T comparable](k int, comparer func(T, T) int) *Toper[T] {
	if k <= 0 {
		return nil
	}

	return &Toper[T]{
		heap: NewHeap(comparer),
		k:    k,
	}
}

func NewToperWithSource[T comparable](k int, source []T, comparer func(T, T) int) *Toper[T] {
	toper := NewToper(k, comparer)
	if toper == nil {
		return nil
	}

	for _, value := range source {
		toper.Add(value)
	}

	return toper
}

// Add keeps value only when it ranks strictly better than the worst kept one.
func (t *Toper[T]) Add(value T) {
	if t.heap.Size() < t.k {
		t.heap.Push(value)
		return
	}

	if t.heap.comparer(value, t.heap.Top()) < 0 {
		t.heap.Pop()
		t.heap.Push(value)
	}
}

func (t *Toper[T]) Size() int {
	return t.heap.Size()
}

// GetTopK drains the toper and returns the kept values, best first.
func (t *Toper[T]) GetTopK() []T {
	result := make([]T, t.heap.Size())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = t.heap.Pop()
	}
	return result
}
