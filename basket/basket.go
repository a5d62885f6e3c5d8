package basket

// Basket maps a menu item ID to the requested quantity. It lives only
// for the duration of a browsing session; nothing is persisted until
// checkout.
type Basket map[uint]int

// Add increments the quantity for an item, inserting it if absent.
func (b Basket) Add(itemID uint, qty int) {
	b[itemID] += qty
}

// Set replaces the quantity for an item. Quantities of zero or less
// remove the entry.
func (b Basket) Set(itemID uint, qty int) {
	if qty > 0 {
		b[itemID] = qty
		return
	}
	delete(b, itemID)
}

// Remove deletes an entry unconditionally.
func (b Basket) Remove(itemID uint) {
	delete(b, itemID)
}

// Count returns the total number of units across all entries.
func (b Basket) Count() int {
	n := 0
	for _, qty := range b {
		n += qty
	}
	return n
}

// IsEmpty reports whether the basket has no entries.
func (b Basket) IsEmpty() bool {
	return len(b) == 0
}
