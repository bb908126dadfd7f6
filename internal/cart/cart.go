package cart

// LineItem is one purchasable unit in a cart: a product in a specific
// size/color variant. UnitPrice is in the smallest currency unit (cents).
type LineItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Image     string `json:"image,omitempty"`
}

// SameSlot reports whether two items occupy the same cart slot.
// Items merge by (productId, size, color), never by productId alone.
func (i LineItem) SameSlot(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart is an ordered collection of line items. Insertion order is kept for
// display; no two entries share the same (productId, size, color) tuple.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Snapshot is an immutable copy of cart contents taken for checkout.
type Snapshot struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
	Count int        `json:"count"`
}

// Add merges item into the cart. An entry with the same
// (productId, size, color) accumulates quantity; otherwise item is appended.
func (c *Cart) Add(item LineItem) {
	for idx, existing := range c.Items {
		if existing.SameSlot(item.ProductID, item.Size, item.Color) {
			c.Items[idx].Quantity = existing.Quantity + item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the matching entry. Removing an absent tuple is a no-op.
func (c *Cart) Remove(productID, size, color string) {
	out := c.Items[:0]
	for _, item := range c.Items {
		if !item.SameSlot(productID, size, color) {
			out = append(out, item)
		}
	}
	c.Items = out
}

// SetQuantity replaces the quantity on the matching entry and reports
// whether an entry matched. It does not create entries.
func (c *Cart) SetQuantity(productID string, qty int, size, color string) bool {
	for idx, item := range c.Items {
		if item.SameSlot(productID, size, color) {
			c.Items[idx].Quantity = qty
			return true
		}
	}
	return false
}

// Total is the sum of unitPrice x quantity over all entries, in cents.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities over all entries.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Snapshot returns a defensive copy of the items plus computed totals.
func (c *Cart) Snapshot() Snapshot {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Snapshot{Items: items, Total: c.Total(), Count: c.Count()}
}
