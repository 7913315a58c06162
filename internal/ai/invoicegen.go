package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/faturaquick/fatura-cli/internal/invoice"
)

// proposalSchema is the strict output shape requested from the model. The
// service never supplies item identifiers; those are assigned here.
var proposalSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"senderName": {Type: "STRING"},
		"clientName": {Type: "STRING"},
		"items": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"name":        {Type: "STRING"},
					"description": {Type: "STRING"},
					"price":       {Type: "NUMBER"},
					"quantity":    {Type: "INTEGER"},
				},
				Required: []string{"name", "description", "price", "quantity"},
			},
		},
	},
	Required: []string{"senderName", "clientName", "items"},
}

type generatedItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type generatedInvoice struct {
	SenderName string          `json:"senderName"`
	ClientName string          `json:"clientName"`
	Items      []generatedItem `json:"items"`
}

// BuildInvoicePrompt wraps the user's scenario in the fixed task
// instructions sent to the model.
func BuildInvoicePrompt(scenario string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Gere dados de fatura para o seguinte cenário: %q.\n", scenario)
	sb.WriteString("Crie nomes de empresas realistas, descrições de itens, preços e quantidades.\n")
	sb.WriteString("Todo o conteúdo de texto deve estar em Português do Brasil (pt-BR).\n")
	sb.WriteString("Garanta que os preços sejam números realistas.")
	return sb.String()
}

// GenerateInvoice asks the model for invoice fields matching the scenario
// and returns them as a partial document with freshly assigned item
// identifiers. Any failure is surfaced to the caller; nothing is retried
// and nothing is partially applied.
func (c *Client) GenerateInvoice(ctx context.Context, scenario string) (*invoice.GeneratedFields, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	req := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: BuildInvoicePrompt(scenario)}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   proposalSchema,
			Temperature:      c.temperature,
		},
	}
	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	var gen generatedInvoice
	if err := json.Unmarshal([]byte(text), &gen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if gen.SenderName == "" || gen.ClientName == "" {
		return nil, fmt.Errorf("%w: senderName and clientName are required", ErrMalformedResponse)
	}

	newID := c.newID
	if newID == nil {
		newID = invoice.NewItemID
	}
	items := make([]invoice.LineItem, 0, len(gen.Items))
	for _, it := range gen.Items {
		items = append(items, invoice.LineItem{
			ID:          newID(),
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return &invoice.GeneratedFields{
		SenderName: gen.SenderName,
		ClientName: gen.ClientName,
		Items:      items,
	}, nil
}
