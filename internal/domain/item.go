package domain

// LineItem is one product entry in the cart. JSON tags match the persisted
// layout: [{id, name, price, quantity}, ...].
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// LineTotal is the extended price of the line, unrounded.
func (li LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// CloneItems returns a deep copy so callers cannot mutate shared state.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
