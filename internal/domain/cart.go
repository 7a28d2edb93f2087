package domain

// Cart is an ordered list of items; insertion order is display order and ids are unique.
type Cart []CartItem

func (c Cart) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns a pointer into the slice so callers can mutate the item in place.
func (c Cart) Find(id string) (*CartItem, bool) {
	if i := c.Index(id); i >= 0 {
		return &c[i], true
	}
	return nil, false
}

func (c Cart) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, it := range c {
		ids = append(ids, it.ID)
	}
	return ids
}

// Add appends the item, or bumps the quantity of an existing row with the same id.
func (c Cart) Add(item CartItem) Cart {
	if cur, ok := c.Find(item.ID); ok {
		cur.Quantity = cur.Qty() + item.Qty()
		return c
	}
	item.Quantity = item.Qty()
	return append(c, item)
}

// Remove deletes the item with the given id, preserving order.
func (c Cart) Remove(id string) (Cart, CartItem, bool) {
	i := c.Index(id)
	if i < 0 {
		return c, CartItem{}, false
	}
	removed := c[i]
	return append(c[:i], c[i+1:]...), removed, true
}

// Normalize drops rows with an empty or duplicate id and defaults quantities.
func (c Cart) Normalize() Cart {
	seen := make(map[string]struct{}, len(c))
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ID == "" {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		it.Quantity = it.Qty()
		out = append(out, it)
	}
	return out
}
