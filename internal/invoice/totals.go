package invoice

// Summary holds the derived amounts of a proposal. They are computed on
// demand and never stored on the document.
type Summary struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}

// Totals computes subtotal, tax, discount and grand total for the given
// items and percentage rates. The result is independent of item order and
// no rounding is applied; currency rounding happens at render time only.
// Negative or zero rates and prices are accepted as-is.
func Totals(items []LineItem, taxRate, discountRate float64) Summary {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	tax := subtotal * taxRate / 100
	discount := subtotal * discountRate / 100
	return Summary{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		Total:          subtotal + tax - discount,
	}
}

// Totals computes the document's derived amounts.
func (d Document) Totals() Summary {
	return Totals(d.Items, d.TaxRate, d.DiscountRate)
}
