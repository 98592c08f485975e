package inventory

import "sort"

// Inventory maps item identifiers to on-hand stock quantities. Stock is
// credited exclusively with accepted quantities coming out of inspection, so
// it is monotonically non-decreasing; no withdrawal operation exists.
//
// Credit performs no clamping and no negativity check: the disposition
// pipeline only ever produces non-negative applied quantities, and that
// guarantee belongs to the clamp formulas upstream, not here.
type Inventory struct {
	stock map[int64]int64
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		stock: make(map[int64]int64),
	}
}

// Credit adds qty to the item's stock
func (i *Inventory) Credit(itemID int64, qty int64) {
	i.stock[itemID] += qty
}

// StockOf returns the current stock for an item, 0 if never credited
func (i *Inventory) StockOf(itemID int64) int64 {
	return i.stock[itemID]
}

// ItemIDs returns the identifiers of all credited items in ascending order
func (i *Inventory) ItemIDs() []int64 {
	ids := make([]int64, 0, len(i.stock))
	for id := range i.stock {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
