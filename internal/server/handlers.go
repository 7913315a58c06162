package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faturaquick/fatura-cli/internal/invoice"
	"github.com/faturaquick/fatura-cli/internal/render"
	"github.com/faturaquick/fatura-cli/internal/session"
)

// statePayload is the view's snapshot of the editor: the document, its
// derived totals and the transient UI state.
type statePayload struct {
	Invoice invoice.Document `json:"invoice"`
	Totals  invoice.Summary  `json:"totals"`
	Pending bool             `json:"pending"`
	Error   string           `json:"error,omitempty"`
}

func (s *Server) state() statePayload {
	doc := s.sess.Document()
	return statePayload{
		Invoice: doc,
		Totals:  doc.Totals(),
		Pending: s.sess.Pending(),
		Error:   s.sess.LastError(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state())
}

// updatePayload carries one field edit. All values arrive as strings;
// numeric fields are coerced here, silently substituting zero for invalid
// input.
type updatePayload struct {
	Field string `json:"field"`
	ID    string `json:"id,omitempty"`
	Value string `json:"value"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var p updatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	u, err := mapUpdate(s.sess.Document(), p)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.sess.Apply(u)
	writeJSON(w, http.StatusOK, s.state())
}

// mapUpdate translates a wire-level field edit into a typed update.
func mapUpdate(doc invoice.Document, p updatePayload) (invoice.Update, error) {
	switch p.Field {
	case "invoiceNumber":
		return invoice.SetInvoiceNumber{Value: p.Value}, nil
	case "issueDate":
		return invoice.SetIssueDate{Value: p.Value}, nil
	case "dueDate":
		return invoice.SetDueDate{Value: p.Value}, nil
	case "taxRate":
		return invoice.SetTaxRate{Value: invoice.CoerceRate(p.Value)}, nil
	case "discountRate":
		return invoice.SetDiscountRate{Value: invoice.CoerceRate(p.Value)}, nil
	case "paymentMethod1":
		return invoice.SetPaymentMethods{First: p.Value, Second: doc.PaymentMethod2}, nil
	case "paymentMethod2":
		return invoice.SetPaymentMethods{First: doc.PaymentMethod1, Second: p.Value}, nil
	case "senderName", "senderPhone", "senderEmail", "senderAddress", "senderWebsite":
		sn := doc.Sender
		switch p.Field {
		case "senderName":
			sn.Name = p.Value
		case "senderPhone":
			sn.Phone = p.Value
		case "senderEmail":
			sn.Email = p.Value
		case "senderAddress":
			sn.Address = p.Value
		case "senderWebsite":
			sn.Website = p.Value
		}
		return invoice.SetSender{Value: sn}, nil
	case "clientName", "clientRole", "clientEmail", "clientAddress":
		cl := doc.Client
		switch p.Field {
		case "clientName":
			cl.Name = p.Value
		case "clientRole":
			cl.Role = p.Value
		case "clientEmail":
			cl.Email = p.Value
		case "clientAddress":
			cl.Address = p.Value
		}
		return invoice.SetClient{Value: cl}, nil
	case "itemName":
		return invoice.SetItemName{ID: p.ID, Value: p.Value}, nil
	case "itemDescription":
		return invoice.SetItemDescription{ID: p.ID, Value: p.Value}, nil
	case "itemPrice":
		return invoice.SetItemPrice{ID: p.ID, Value: invoice.CoerceAmount(p.Value)}, nil
	case "itemQuantity":
		return invoice.SetItemQuantity{ID: p.ID, Value: invoice.CoerceQuantity(p.Value)}, nil
	default:
		return nil, fmt.Errorf("unknown field: %s", p.Field)
	}
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id := s.sess.AddItem()
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.sess.Apply(invoice.RemoveItem{ID: id})
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.sess.Reset()
	writeJSON(w, http.StatusOK, s.state())
}

type generatePayload struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var p generatePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	err := s.sess.Generate(r.Context(), p.Prompt)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s.state())
	case errors.Is(err, session.ErrEmptyPrompt):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, session.ErrGenerationPending):
		writeError(w, http.StatusConflict, err.Error())
	default:
		// the four generation failure modes collapse to one message
		writeError(w, http.StatusBadGateway, session.UserFacingGenerationError)
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	doc := s.sess.Document()
	pdf, err := render.PDF(doc)
	if err != nil {
		s.logger.Error("pdf render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render PDF")
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", render.Title(doc)))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}
