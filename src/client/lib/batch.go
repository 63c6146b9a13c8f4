package client

type Batch struct {
	Items []string
	size  int
}

func NewBatch(batchSize int) *Batch {
	return &Batch{
		Items: []string{},
		size:  batchSize,
	}
}

func (b *Batch) AddItem(item string) (successfulAddition bool) {
	if b.IsFull() {
		return false
	}

	b.Items = append(b.Items, item)
	return true
}

func (b *Batch) IsFull() bool {
	return len(b.Items) >= b.size
}

// SplitInBatches chunks items into batches of at most batchSize items.
// A non positive batchSize puts everything in a single batch.
func SplitInBatches(items []string, batchSize int) []*Batch {
	if batchSize <= 0 {
		batchSize = len(items)
	}

	batches := []*Batch{}
	current := NewBatch(batchSize)
	for _, item := range items {
		if !current.AddItem(item) {
			batches = append(batches, current)
			current = NewBatch(batchSize)
			current.AddItem(item)
		}
	}

	if len(current.Items) > 0 {
		batches = append(batches, current)
	}
	return batches
}
