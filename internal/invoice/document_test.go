package invoice

import (
	"reflect"
	"testing"
	"time"
)

func TestDefaultDocumentDates(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	d := DefaultDocument(now)
	if d.IssueDate != "2026-03-01" {
		t.Fatalf("IssueDate = %q", d.IssueDate)
	}
	if d.DueDate != "2026-03-08" {
		t.Fatalf("DueDate = %q", d.DueDate)
	}
	if len(d.Items) != 4 {
		t.Fatalf("default document has %d items, want 4", len(d.Items))
	}
	seen := map[string]bool{}
	for _, it := range d.Items {
		if seen[it.ID] {
			t.Fatalf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	d := DefaultDocument(time.Now())
	before := d.Items

	id := NewItemID()
	d2 := d.Apply(AddItem{Item: NewItem(id)})
	if len(d2.Items) != len(before)+1 {
		t.Fatalf("after add: %d items, want %d", len(d2.Items), len(before)+1)
	}
	d3 := d2.Apply(RemoveItem{ID: id})
	if !reflect.DeepEqual(d3.Items, before) {
		t.Fatalf("items not restored after add+remove: %+v", d3.Items)
	}
}

func TestNewItemDefaults(t *testing.T) {
	it := NewItem("x1")
	if it.Price != 0 || it.Quantity != 1 {
		t.Fatalf("new item defaults price=%v quantity=%d, want 0/1", it.Price, it.Quantity)
	}
	if it.Name == "" || it.Description == "" {
		t.Fatal("new item must carry placeholder text")
	}
}

func TestItemEditIsolation(t *testing.T) {
	d := DefaultDocument(time.Now())
	orig := d
	d2 := d.Apply(SetItemPrice{ID: "2", Value: 750})

	if d2.Items[d2.ItemIndex("2")].Price != 750 {
		t.Fatal("edited item price not applied")
	}
	for _, id := range []string{"1", "3", "4"} {
		if !reflect.DeepEqual(d2.Items[d2.ItemIndex(id)], orig.Items[orig.ItemIndex(id)]) {
			t.Fatalf("item %s changed by edit of item 2", id)
		}
	}
	if d2.InvoiceNumber != orig.InvoiceNumber || d2.TaxRate != orig.TaxRate {
		t.Fatal("non-item fields changed by an item edit")
	}
	// the original value must be untouched
	if !reflect.DeepEqual(d, orig) {
		t.Fatal("Apply mutated its receiver")
	}
}

func TestUpdateUnknownItemIsNoop(t *testing.T) {
	d := DefaultDocument(time.Now())
	d2 := d.Apply(SetItemQuantity{ID: "nope", Value: 9})
	if !reflect.DeepEqual(d2, d) {
		t.Fatal("update of unknown item id changed the document")
	}
}

func TestTypedUpdates(t *testing.T) {
	d := DefaultDocument(time.Now())
	d = d.Apply(SetInvoiceNumber{Value: "PROP-042"})
	d = d.Apply(SetIssueDate{Value: "2026-01-02"})
	d = d.Apply(SetDueDate{Value: "2026-01-09"})
	d = d.Apply(SetTaxRate{Value: 12.5})
	d = d.Apply(SetDiscountRate{Value: -3})
	d = d.Apply(SetPaymentMethods{First: "pix@x", Second: "banco@x"})
	d = d.Apply(SetSender{Value: Sender{Name: "ACME"}})
	d = d.Apply(SetClient{Value: Client{Name: "Maria", Role: "CTO"}})

	if d.InvoiceNumber != "PROP-042" || d.IssueDate != "2026-01-02" || d.DueDate != "2026-01-09" {
		t.Fatalf("header fields not applied: %+v", d)
	}
	if d.TaxRate != 12.5 || d.DiscountRate != -3 {
		t.Fatalf("rates not applied: %v %v", d.TaxRate, d.DiscountRate)
	}
	if d.PaymentMethod1 != "pix@x" || d.PaymentMethod2 != "banco@x" {
		t.Fatal("payment methods not applied")
	}
	if d.Sender.Name != "ACME" || d.Client.Role != "CTO" {
		t.Fatal("party fields not applied")
	}
}

func TestMergeReplacesNamesAndItems(t *testing.T) {
	d := DefaultDocument(time.Now())
	gen := GeneratedFields{
		SenderName: "Foto Studio Luz",
		ClientName: "Ana Costa",
		Items: []LineItem{
			{ID: "g1", Name: "Ensaio", Description: "Ensaio externo", Price: 800, Quantity: 1},
		},
	}
	out := d.Merge(gen)
	if out.Sender.Name != "Foto Studio Luz" || out.Client.Name != "Ana Costa" {
		t.Fatalf("names not merged: %+v", out)
	}
	if len(out.Items) != 1 || out.Items[0].ID != "g1" {
		t.Fatalf("items not replaced: %+v", out.Items)
	}
	// untouched fields carry over
	if out.InvoiceNumber != d.InvoiceNumber || out.Client.Role != d.Client.Role || out.TaxRate != d.TaxRate {
		t.Fatal("merge touched fields outside the generated set")
	}
}

func TestMergeEmptyItemsKeepsPrior(t *testing.T) {
	d := DefaultDocument(time.Now())
	out := d.Merge(GeneratedFields{SenderName: "X", ClientName: "Y", Items: nil})
	if !reflect.DeepEqual(out.Items, d.Items) {
		t.Fatal("empty generated item list must keep prior items")
	}
	out = d.Merge(GeneratedFields{SenderName: "X", ClientName: "Y", Items: []LineItem{}})
	if !reflect.DeepEqual(out.Items, d.Items) {
		t.Fatal("zero-length generated item list must keep prior items")
	}
}

func TestApplyDoesNotShareItemsSlice(t *testing.T) {
	d := DefaultDocument(time.Now())
	d2 := d.Apply(SetInvoiceNumber{Value: "PROP-002"})
	d2.Items[0].Name = "mutated"
	if d.Items[0].Name == "mutated" {
		t.Fatal("Apply returned a document sharing the items slice")
	}
}

func TestNewItemIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewItemID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}
