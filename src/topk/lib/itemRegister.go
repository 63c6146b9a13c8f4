package topk

import (
	"math"
)

// ItemRegister ranks an item of a month by an accumulated value. Order is the
// position in which the item was first seen and breaks ties.
type ItemRegister struct {
	Item  string
	Value float64
	Order int
}

// SEED_ORDER ranks a seed register ahead of every real item with the same value.
const SEED_ORDER = -1

// CmpItemRegisters returns 1 when a ranks worse than b. NaN values rank worst
// and equal values fall back to first-seen order.
func CmpItemRegisters(a, b ItemRegister) int {
	aNaN, bNaN := math.IsNaN(a.Value), math.IsNaN(b.Value)

	switch {
	case aNaN && !bNaN:
		return 1
	case !aNaN && bNaN:
		return -1
	case !aNaN && a.Value < b.Value:
		return 1
	case !aNaN && a.Value > b.Value:
		return -1
	case a.Order > b.Order:
		return 1
	case a.Order < b.Order:
		return -1
	}
	return 0
}

func NewItemRegister(item string, value float64, order int) ItemRegister {
	return ItemRegister{
		Item:  item,
		Value: value,
		Order: order,
	}
}
