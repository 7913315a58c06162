package invoice

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO date format used for issue and due dates.
const DateLayout = "2006-01-02"

// LineItem is one billable row of a proposal.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Sender identifies the party issuing the proposal.
type Sender struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// Client identifies the party receiving the proposal.
type Client struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Document is the full editable proposal record. It is treated as an
// immutable value: every mutation goes through Apply or Merge, which return
// a new Document and never share the items slice with the receiver.
type Document struct {
	InvoiceNumber string `json:"invoiceNumber"`
	IssueDate     string `json:"issueDate"`
	DueDate       string `json:"dueDate"`

	Sender Sender `json:"sender"`
	Client Client `json:"client"`

	Items []LineItem `json:"items"`

	TaxRate      float64 `json:"taxRate"`
	DiscountRate float64 `json:"discountRate"`

	PaymentMethod1 string `json:"paymentMethod1"`
	PaymentMethod2 string `json:"paymentMethod2"`
}

// NewItemID returns a unique identifier for a line item.
func NewItemID() string {
	return uuid.NewString()
}

// NewItem returns a fresh line item with placeholder text, zero price and
// quantity one.
func NewItem(id string) LineItem {
	return LineItem{
		ID:          id,
		Name:        "Novo Produto",
		Description: "Descrição do serviço ou produto",
		Price:       0,
		Quantity:    1,
	}
}

// DefaultDocument returns the fixed starting proposal. The issue date is the
// given day and the due date falls one week later.
func DefaultDocument(now time.Time) Document {
	return Document{
		InvoiceNumber: "PROP-001",
		IssueDate:     now.Format(DateLayout),
		DueDate:       now.AddDate(0, 0, 7).Format(DateLayout),

		Sender: Sender{
			Name:    "QUANTAM ART",
			Phone:   "+55 11 91234 5575",
			Email:   "ola@quantam.art",
			Address: "Rua Criativa 123, Cidade Design",
			Website: "www.quantam.art",
		},
		Client: Client{
			Name:    "João Silva",
			Role:    "Gerente Financeiro",
			Email:   "joao.silva@email.com",
			Address: "Av. Empresarial 456, Centro Tecnológico",
		},

		Items: []LineItem{
			{
				ID:          "1",
				Name:        "Identidade Visual",
				Description: "Pacote completo de identidade visual incluindo logo, paleta de cores e tipografia.",
				Price:       1000.00,
				Quantity:    2,
			},
			{
				ID:          "2",
				Name:        "Desenvolvimento Web",
				Description: "Implementação Frontend da landing page usando React e Tailwind CSS.",
				Price:       1000.00,
				Quantity:    1,
			},
			{
				ID:          "3",
				Name:        "Otimização SEO",
				Description: "Configuração básica de SEO, meta tags e geração de sitemap.",
				Price:       500.00,
				Quantity:    2,
			},
			{
				ID:          "4",
				Name:        "Assets Redes Sociais",
				Description: "Conjunto de 10 templates para Instagram e LinkedIn.",
				Price:       1000.00,
				Quantity:    3,
			},
		},

		TaxRate:      0,
		DiscountRate: 0,

		PaymentMethod1: "banco@quantam.art",
		PaymentMethod2: "pix@quantam.art",
	}
}

// GeneratedFields is the partial document produced by the generation
// adapter. Fields outside this set are never touched by a merge.
type GeneratedFields struct {
	SenderName string     `json:"senderName"`
	ClientName string     `json:"clientName"`
	Items      []LineItem `json:"items"`
}

// Merge folds generated fields into the document and returns the result.
// Sender and client names are taken when non-empty; the items list is
// replaced wholesale only when the generated list has at least one entry,
// otherwise the prior items are kept. All other fields carry over untouched.
func (d Document) Merge(g GeneratedFields) Document {
	out := d
	out.Items = copyItems(d.Items)
	if g.SenderName != "" {
		out.Sender.Name = g.SenderName
	}
	if g.ClientName != "" {
		out.Client.Name = g.ClientName
	}
	if len(g.Items) > 0 {
		out.Items = copyItems(g.Items)
	}
	return out
}

// Clone returns a copy whose items slice is not shared with the receiver.
func (d Document) Clone() Document {
	d.Items = copyItems(d.Items)
	return d
}

// ItemIndex returns the position of the item with the given identifier, or
// -1 when no such item exists.
func (d Document) ItemIndex(id string) int {
	for i, it := range d.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func copyItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
