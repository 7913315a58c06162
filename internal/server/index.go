package server

import (
	"html/template"
	"net/http"

	"github.com/faturaquick/fatura-cli/internal/invoice"
	"github.com/faturaquick/fatura-cli/internal/render"
)

// indexTemplate is a read-only preview of the current proposal. The
// interactive editing surface talks to the JSON API.
var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"currency": render.Currency,
	"percent":  render.Percent,
	"lineTotal": func(it invoice.LineItem) float64 {
		return it.Price * float64(it.Quantity)
	},
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; color: #1e293b; max-width: 760px; margin: 2rem auto; }
h1 { letter-spacing: 0.05em; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
th { background: #f97316; color: #fff; text-align: left; padding: 0.5rem; }
td { border-bottom: 1px solid #e2e8f0; padding: 0.5rem; }
.totals td { border: none; }
.grand { background: #0f172a; color: #fff; font-weight: bold; }
.muted { color: #64748b; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>PROPOSTA</h1>
<p><strong>{{.State.Invoice.Sender.Name}}</strong><br>
<span class="muted">{{.State.Invoice.Sender.Email}} · {{.State.Invoice.Sender.Phone}} · {{.State.Invoice.Sender.Website}}</span></p>
<p class="muted">Proposta para</p>
<p><strong>{{.State.Invoice.Client.Name}}</strong><br>
<span class="muted">{{.State.Invoice.Client.Email}} · {{.State.Invoice.Client.Address}}</span></p>
<p class="muted">Número {{.State.Invoice.InvoiceNumber}} · Data {{.State.Invoice.IssueDate}} · Vencimento {{.State.Invoice.DueDate}}</p>
{{if .State.Error}}<p style="color:#dc2626">{{.State.Error}}</p>{{end}}
<table>
<tr><th>Descrição do Produto</th><th>Preço</th><th>Qtd</th><th>Total</th></tr>
{{range .State.Invoice.Items}}
<tr>
<td><strong>{{.Name}}</strong><br><span class="muted">{{.Description}}</span></td>
<td>{{currency .Price}}</td>
<td>{{.Quantity}}</td>
<td>{{currency (lineTotal .)}}</td>
</tr>
{{end}}
</table>
<table class="totals">
<tr><td>Subtotal</td><td>{{currency .State.Totals.Subtotal}}</td></tr>
<tr><td>Imposto {{percent .State.Invoice.TaxRate}}%</td><td>{{currency .State.Totals.TaxAmount}}</td></tr>
<tr><td>Desconto {{percent .State.Invoice.DiscountRate}}%</td><td>{{currency .State.Totals.DiscountAmount}}</td></tr>
<tr class="grand"><td>TOTAL GERAL</td><td>{{currency .State.Totals.Total}}</td></tr>
</table>
<p class="muted">Método 1: {{.State.Invoice.PaymentMethod1}} · Método 2: {{.State.Invoice.PaymentMethod2}}</p>
<p><a href="/print">Imprimir / PDF</a></p>
</body>
</html>`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.state()
	data := struct {
		Title string
		State statePayload
	}{
		Title: render.Title(st.Invoice),
		State: st,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}
