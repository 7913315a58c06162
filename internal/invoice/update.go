package invoice

// Update is a single field mutation. The set of implementations is closed:
// each variant targets one field or field group, so a caller can never
// assign a wrong-typed value to a field by key.
type Update interface {
	apply(Document) Document
}

// Apply returns a new Document with the update folded in. The receiver is
// never modified.
func (d Document) Apply(u Update) Document {
	return u.apply(d)
}

// with copies the document (including its items slice) and lets f edit the
// copy in place.
func (d Document) with(f func(*Document)) Document {
	d.Items = copyItems(d.Items)
	f(&d)
	return d
}

type SetInvoiceNumber struct{ Value string }

func (u SetInvoiceNumber) apply(d Document) Document {
	return d.with(func(d *Document) { d.InvoiceNumber = u.Value })
}

type SetIssueDate struct{ Value string }

func (u SetIssueDate) apply(d Document) Document {
	return d.with(func(d *Document) { d.IssueDate = u.Value })
}

type SetDueDate struct{ Value string }

func (u SetDueDate) apply(d Document) Document {
	return d.with(func(d *Document) { d.DueDate = u.Value })
}

type SetSender struct{ Value Sender }

func (u SetSender) apply(d Document) Document {
	return d.with(func(d *Document) { d.Sender = u.Value })
}

type SetClient struct{ Value Client }

func (u SetClient) apply(d Document) Document {
	return d.with(func(d *Document) { d.Client = u.Value })
}

type SetTaxRate struct{ Value float64 }

func (u SetTaxRate) apply(d Document) Document {
	return d.with(func(d *Document) { d.TaxRate = u.Value })
}

type SetDiscountRate struct{ Value float64 }

func (u SetDiscountRate) apply(d Document) Document {
	return d.with(func(d *Document) { d.DiscountRate = u.Value })
}

type SetPaymentMethods struct{ First, Second string }

func (u SetPaymentMethods) apply(d Document) Document {
	return d.with(func(d *Document) {
		d.PaymentMethod1 = u.First
		d.PaymentMethod2 = u.Second
	})
}

// AddItem appends the item to the document.
type AddItem struct{ Item LineItem }

func (u AddItem) apply(d Document) Document {
	return d.with(func(d *Document) { d.Items = append(d.Items, u.Item) })
}

// RemoveItem drops the item with the given identifier. Unknown identifiers
// leave the document unchanged.
type RemoveItem struct{ ID string }

func (u RemoveItem) apply(d Document) Document {
	return d.with(func(d *Document) {
		out := d.Items[:0]
		for _, it := range d.Items {
			if it.ID != u.ID {
				out = append(out, it)
			}
		}
		d.Items = out
	})
}

type SetItemName struct {
	ID    string
	Value string
}

func (u SetItemName) apply(d Document) Document {
	return d.withItem(u.ID, func(it *LineItem) { it.Name = u.Value })
}

type SetItemDescription struct {
	ID    string
	Value string
}

func (u SetItemDescription) apply(d Document) Document {
	return d.withItem(u.ID, func(it *LineItem) { it.Description = u.Value })
}

type SetItemPrice struct {
	ID    string
	Value float64
}

func (u SetItemPrice) apply(d Document) Document {
	return d.withItem(u.ID, func(it *LineItem) { it.Price = u.Value })
}

type SetItemQuantity struct {
	ID    string
	Value int
}

func (u SetItemQuantity) apply(d Document) Document {
	return d.withItem(u.ID, func(it *LineItem) { it.Quantity = u.Value })
}

// withItem edits a single item by identifier; other items and all document
// fields are untouched. Unknown identifiers are a no-op.
func (d Document) withItem(id string, f func(*LineItem)) Document {
	return d.with(func(d *Document) {
		if i := d.ItemIndex(id); i >= 0 {
			f(&d.Items[i])
		}
	})
}
