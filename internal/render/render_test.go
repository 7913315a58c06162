package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/faturaquick/fatura-cli/internal/invoice"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{3000, "R$ 3.000,00"},
		{19.9, "R$ 19,90"},
	}
	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.5); got != "12,5" {
		t.Errorf("Percent(12.5) = %q", got)
	}
	if got := Percent(0); got != "0" {
		t.Errorf("Percent(0) = %q", got)
	}
}

func TestTitle(t *testing.T) {
	d := invoice.DefaultDocument(time.Now())
	if got := Title(d); got != "Proposta-PROP-001" {
		t.Fatalf("Title = %q", got)
	}
	d = d.Apply(invoice.SetInvoiceNumber{Value: ""})
	if got := Title(d); got != "Proposta-Nova" {
		t.Fatalf("Title = %q", got)
	}
}

func TestPDFProducesDocument(t *testing.T) {
	d := invoice.DefaultDocument(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	b, err := PDF(d)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", b[:8])
	}
}

func TestPDFHandlesEmptyItems(t *testing.T) {
	d := invoice.DefaultDocument(time.Now())
	d.Items = nil
	if _, err := PDF(d); err != nil {
		t.Fatalf("PDF with no items: %v", err)
	}
}
