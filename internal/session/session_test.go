package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/faturaquick/fatura-cli/internal/invoice"
)

type fakeGenerator struct {
	fields  *invoice.GeneratedFields
	err     error
	release chan struct{} // when set, GenerateInvoice blocks until closed
	calls   int
}

func (f *fakeGenerator) GenerateInvoice(ctx context.Context, scenario string) (*invoice.GeneratedFields, error) {
	f.calls++
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.fields, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(gen Generator) *Session {
	s := New(gen, testLogger())
	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.clock = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	s.doc = invoice.DefaultDocument(s.clock())
	return s
}

func TestGenerateEmptyPromptRejected(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestSession(gen)
	if err := s.Generate(context.Background(), "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatal("generator must not be invoked for an empty prompt")
	}
}

func TestGenerateSuccessMergesAndClearsState(t *testing.T) {
	gen := &fakeGenerator{fields: &invoice.GeneratedFields{
		SenderName: "Foto Studio Luz",
		ClientName: "Ana Costa",
		Items:      []invoice.LineItem{{ID: "g1", Name: "Ensaio", Price: 800, Quantity: 1}},
	}}
	s := newTestSession(gen)
	before := s.Document()

	if err := s.Generate(context.Background(), "fotografia freelance"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	doc := s.Document()
	if doc.Sender.Name != "Foto Studio Luz" || doc.Client.Name != "Ana Costa" {
		t.Fatalf("names not merged: %+v", doc)
	}
	if len(doc.Items) != 1 || doc.Items[0].ID != "g1" {
		t.Fatalf("items not replaced: %+v", doc.Items)
	}
	if doc.InvoiceNumber != before.InvoiceNumber || doc.TaxRate != before.TaxRate {
		t.Fatal("generation touched fields outside the generated set")
	}
	if s.Pending() || s.LastError() != "" {
		t.Fatal("transient state not cleared after success")
	}
}

func TestGenerateFailureLeavesDocumentUntouched(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("service down")}
	s := newTestSession(gen)
	s.Apply(invoice.SetInvoiceNumber{Value: "PROP-099"})
	before := s.Document()

	err := s.Generate(context.Background(), "qualquer cenário")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := s.Document(); !reflect.DeepEqual(got, before) {
		t.Fatalf("document changed after failed generation:\n got %+v\nwant %+v", got, before)
	}
	if s.LastError() != UserFacingGenerationError {
		t.Fatalf("LastError = %q", s.LastError())
	}
	if s.Pending() {
		t.Fatal("pending flag not cleared after failure")
	}
}

func TestGenerateRejectsReentrantCalls(t *testing.T) {
	gen := &fakeGenerator{
		fields:  &invoice.GeneratedFields{SenderName: "X", ClientName: "Y"},
		release: make(chan struct{}),
	}
	s := newTestSession(gen)

	done := make(chan error, 1)
	go func() { done <- s.Generate(context.Background(), "primeiro") }()

	// wait for the first call to be in flight
	deadline := time.After(2 * time.Second)
	for !s.Pending() {
		select {
		case <-deadline:
			t.Fatal("first generation never became pending")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if err := s.Generate(context.Background(), "segundo"); !errors.Is(err, ErrGenerationPending) {
		t.Fatalf("expected ErrGenerationPending, got %v", err)
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	if s.Pending() {
		t.Fatal("pending flag not cleared")
	}
	if gen.calls != 1 {
		t.Fatalf("generator invoked %d times, want 1", gen.calls)
	}
}

func TestResetRestoresDefaultDocument(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	s.Apply(invoice.SetInvoiceNumber{Value: "PROP-777"})
	s.Apply(invoice.SetTaxRate{Value: 42})
	s.AddItem()

	s.Reset()
	want := invoice.DefaultDocument(s.clock())
	if got := s.Document(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reset document mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestAddItemUsesGeneratedID(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	id := s.AddItem()
	if id != "id-1" {
		t.Fatalf("AddItem id = %q", id)
	}
	doc := s.Document()
	if doc.ItemIndex(id) < 0 {
		t.Fatal("added item not present in document")
	}
	it := doc.Items[doc.ItemIndex(id)]
	if it.Price != 0 || it.Quantity != 1 {
		t.Fatalf("placeholder defaults wrong: %+v", it)
	}
}

func TestSuggestedFilename(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	if got := s.SuggestedFilename(); got != "Proposta-PROP-001" {
		t.Fatalf("SuggestedFilename = %q", got)
	}
	s.Apply(invoice.SetInvoiceNumber{Value: ""})
	if got := s.SuggestedFilename(); got != "Proposta-Nova" {
		t.Fatalf("SuggestedFilename = %q", got)
	}
}

func TestDocumentSnapshotIsIsolated(t *testing.T) {
	s := newTestSession(&fakeGenerator{})
	snap := s.Document()
	snap.Items[0].Name = "mutated"
	if s.Document().Items[0].Name == "mutated" {
		t.Fatal("snapshot shares storage with the live document")
	}
}
