// Package session owns the single live proposal document and its transient
// editing state. The document is an immutable value swapped wholesale on
// every accepted edit; the session is safe for concurrent use.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/faturaquick/fatura-cli/internal/invoice"
)

var (
	// ErrEmptyPrompt rejects generation with a blank scenario.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrGenerationPending rejects re-entrant generation while a request
	// is in flight.
	ErrGenerationPending = errors.New("a generation request is already in progress")
)

// UserFacingGenerationError is the single message shown for any generation
// failure; the underlying cause is logged with detail.
const UserFacingGenerationError = "Falha ao gerar fatura. Por favor, tente novamente."

// Generator produces a partial document from a free-text scenario.
type Generator interface {
	GenerateInvoice(ctx context.Context, scenario string) (*invoice.GeneratedFields, error)
}

// Session holds the current document plus pending-generation flag, the
// in-progress prompt and the last user-facing error message.
type Session struct {
	mu      sync.Mutex
	doc     invoice.Document
	pending bool
	prompt  string
	lastErr string

	gen    Generator
	logger *slog.Logger
	newID  func() string
	clock  func() time.Time
}

// New returns a session initialized with the fixed default document.
func New(gen Generator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		gen:    gen,
		logger: logger,
		newID:  invoice.NewItemID,
		clock:  time.Now,
	}
	s.doc = invoice.DefaultDocument(s.clock())
	return s
}

// Document returns a snapshot of the current document.
func (s *Session) Document() invoice.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Totals computes the derived amounts of the current document.
func (s *Session) Totals() invoice.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Totals()
}

// Apply replaces the document with a new value carrying the given update.
func (s *Session) Apply(u invoice.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = s.doc.Apply(u)
}

// AddItem appends a fresh placeholder item and returns its identifier.
func (s *Session) AddItem() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.doc = s.doc.Apply(invoice.AddItem{Item: invoice.NewItem(id)})
	return id
}

// Reset replaces the document with the fixed default, discarding all edits.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = invoice.DefaultDocument(s.clock())
	s.lastErr = ""
	s.prompt = ""
}

// Pending reports whether a generation request is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// LastError returns the user-facing message of the last failed generation,
// or the empty string.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Generate fills the document from a free-text scenario. The merge is
// all-or-nothing: on any failure the document is left untouched and the
// error is surfaced; the pending flag is always cleared on completion.
func (s *Session) Generate(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ErrEmptyPrompt
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrGenerationPending
	}
	s.pending = true
	s.prompt = prompt
	s.lastErr = ""
	s.mu.Unlock()

	fields, err := s.gen.GenerateInvoice(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	if err != nil {
		s.lastErr = UserFacingGenerationError
		s.logger.Error("fatura generation failed", "error", err)
		return err
	}
	s.doc = s.doc.Merge(*fields)
	s.prompt = ""
	s.logger.Info("fatura generated", "items", len(fields.Items))
	return nil
}

// SuggestedFilename derives the print/export filename from the invoice
// number, falling back to "Nova" for an unnumbered proposal.
func (s *Session) SuggestedFilename() string {
	n := s.Document().InvoiceNumber
	if n == "" {
		n = "Nova"
	}
	return "Proposta-" + n
}
