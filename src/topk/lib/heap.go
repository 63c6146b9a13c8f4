package topk

// heap keeps the greatest element, according to comparer, at the top.
type heap[T comparable] struct {
	amount   int
	data     []T
	comparer func(T, T) int
}

const (
	InitialSize   = 16
	ScalingFactor = 2
	Error         = "Heap is empty"
)

func NewHeap[T comparable](comparer func(T, T) int) *heap[T] {
	return &heap[T]{
		data:     make([]T, InitialSize),
		comparer: comparer,
	}
}

func (h *heap[T]) IsEmpty() bool {
	return h.Size() == 0
}

func (h *heap[T]) Size() int {
	return h.amount
}

func (h *heap[T]) Top() T {
	if h.IsEmpty() {
		panic(Error)
	}
	return h.data[0]
}

func (h *heap[T]) Pop() T {
	if h.IsEmpty() {
		panic(Error)
	}

	top := h.data[0]
	h.amount--
	h.swap(0, h.amount)
	h.shrinkIfNeeded()
	h.downHeap(0)
	return top
}

func (h *heap[T]) Push(value T) {
	h.growIfNeeded()
	h.data[h.amount] = value
	h.upHeap(h.amount)
	h.amount++
}

func (h *heap[T]) upHeap(pos int) {
	if pos == 0 {
		return
	}

	parentPos := (pos - 1) / 2
	if h.comparer(h.data[pos], h.data[parentPos]) <= 0 {
		return
	}
	h.swap(pos, parentPos)
	h.upHeap(parentPos)
}

func (h *heap[T]) downHeap(pos int) {
	greatest := pos
	for _, child := range []int{pos*2 + 1, pos*2 + 2} {
		if child < h.amount && h.comparer(h.data[child], h.data[greatest]) > 0 {
			greatest = child
		}
	}

	if greatest == pos {
		return
	}
	h.swap(pos, greatest)
	h.downHeap(greatest)
}

func (h *heap[T]) growIfNeeded() {
	if h.amount < len(h.data) {
		return
	}
	h.resize(len(h.data) * ScalingFactor)
}

func (h *heap[T]) shrinkIfNeeded() {
	if h.amount > InitialSize && h.amount*4 <= len(h.data) {
		h.resize(len(h.data) / ScalingFactor)
	}
}

func (h *heap[T]) resize(size int) {
	newData := make([]T, size)
	copy(newData, h.data[:h.amount])
	h.data = newData
}

func (h *heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}
