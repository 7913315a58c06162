// Package render produces the printable proposal: a single A4 page with the
// header bands, item table, derived totals and payment footer.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/faturaquick/fatura-cli/internal/invoice"
)

const (
	pageWidth  = 210.0
	marginX    = 16.0
	contentW   = pageWidth - 2*marginX
	colDesc    = contentW * 0.50
	colPrice   = contentW * 0.16
	colQty     = contentW * 0.12
	colLineTot = contentW * 0.22
)

// Title derives the document title from the invoice number, matching the
// suggested print filename.
func Title(doc invoice.Document) string {
	n := doc.InvoiceNumber
	if n == "" {
		n = "Nova"
	}
	return "Proposta-" + n
}

// PDF renders the proposal to a single-page A4 PDF.
func PDF(doc invoice.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title(doc), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	navy := func() { pdf.SetFillColor(15, 23, 42) }
	orange := func() { pdf.SetFillColor(249, 115, 22) }

	// header bands
	navy()
	pdf.Rect(0, 0, pageWidth, 26, "F")
	orange()
	pdf.Rect(34, 0, 10, 30, "F")

	// sender contact strip, white on navy
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(pageWidth/2, 6)
	pdf.CellFormat(pageWidth/2-marginX, 4, tr(doc.Sender.Phone+"  ·  "+doc.Sender.Email), "", 2, "R", false, 0, "")
	pdf.CellFormat(pageWidth/2-marginX, 4, tr(doc.Sender.Website), "", 2, "R", false, 0, "")
	pdf.CellFormat(pageWidth/2-marginX, 4, tr(doc.Sender.Address), "", 2, "R", false, 0, "")

	// sender identity
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginX, 32)
	pdf.CellFormat(contentW/2, 7, tr(doc.Sender.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(contentW/2, 4, tr("O Auge da Criatividade"), "", 2, "L", false, 0, "")

	// title and dates, right side
	pdf.SetXY(pageWidth/2, 32)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(pageWidth/2-marginX, 10, "PROPOSTA", "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(pageWidth/2-marginX, 5, tr(fmt.Sprintf("Número: %s", doc.InvoiceNumber)), "", 2, "R", false, 0, "")
	pdf.CellFormat(pageWidth/2-marginX, 5, tr("Data: "+doc.IssueDate), "", 2, "R", false, 0, "")
	pdf.CellFormat(pageWidth/2-marginX, 5, tr("Vencimento: "+doc.DueDate), "", 2, "R", false, 0, "")

	// client block
	pdf.SetXY(marginX, 50)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW/2, 4, tr("Proposta para"), "", 2, "L", false, 0, "")
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW/2, 7, tr(doc.Client.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(71, 85, 105)
	pdf.CellFormat(contentW/2, 4, tr("E: "+doc.Client.Email), "", 2, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 4, tr(doc.Client.Address), "", 2, "L", false, 0, "")

	// items table header
	y := 76.0
	orange()
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginX, y)
	pdf.CellFormat(colDesc, 9, tr("  Descrição do Produto"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colPrice, 9, tr("Preço"), "", 0, "C", true, 0, "")
	pdf.CellFormat(colQty, 9, "Qtd", "", 0, "C", true, 0, "")
	pdf.CellFormat(colLineTot, 9, "Total  ", "", 1, "R", true, 0, "")
	y += 9

	// items
	for i, it := range doc.Items {
		rowH := 13.0
		if i%2 == 1 {
			pdf.SetFillColor(248, 250, 252)
			pdf.Rect(marginX, y, contentW, rowH, "F")
		}
		pdf.SetXY(marginX+2, y+2)
		pdf.SetTextColor(30, 41, 59)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colDesc-2, 4, tr(it.Name), "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(100, 116, 139)
		pdf.MultiCell(colDesc-4, 3, tr(it.Description), "", "L", false)

		pdf.SetXY(marginX+colDesc, y+4)
		pdf.SetTextColor(51, 65, 85)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colPrice, 5, tr(Currency(it.Price)), "", 0, "C", false, 0, "")
		pdf.CellFormat(colQty, 5, fmt.Sprintf("%d", it.Quantity), "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(30, 41, 59)
		pdf.CellFormat(colLineTot, 5, tr(Currency(it.Price*float64(it.Quantity))), "", 1, "R", false, 0, "")
		y += rowH
	}

	// totals block, right aligned
	sum := doc.Totals()
	y += 8
	totalsX := marginX + contentW*0.55
	totalsW := contentW * 0.45
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetXY(totalsX, y)
	pdf.CellFormat(totalsW/2, 6, "Subtotal", "", 0, "L", false, 0, "")
	pdf.CellFormat(totalsW/2, 6, tr(Currency(sum.Subtotal)), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.SetX(totalsX)
	pdf.CellFormat(totalsW/2, 6, tr(fmt.Sprintf("Imposto %s%%", Percent(doc.TaxRate))), "", 0, "L", false, 0, "")
	pdf.CellFormat(totalsW/2, 6, tr(Currency(sum.TaxAmount)), "", 1, "R", false, 0, "")
	pdf.SetX(totalsX)
	pdf.CellFormat(totalsW/2, 6, tr(fmt.Sprintf("Desconto %s%%", Percent(doc.DiscountRate))), "", 0, "L", false, 0, "")
	pdf.CellFormat(totalsW/2, 6, tr(Currency(sum.DiscountAmount)), "", 1, "R", false, 0, "")

	y = pdf.GetY() + 2
	navy()
	pdf.Rect(totalsX, y, totalsW, 10, "F")
	orange()
	pdf.Rect(totalsX+totalsW*0.55, y, totalsW*0.45, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(totalsX+2, y)
	pdf.CellFormat(totalsW*0.55-2, 10, "TOTAL GERAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(totalsW*0.45-2, 10, tr(Currency(sum.Total)), "", 1, "R", false, 0, "")

	// payment methods and signature
	y = 230
	pdf.SetXY(marginX, y)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, tr("Opção de Pagamento"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(contentW/2, 4, tr("Método 1: "+doc.PaymentMethod1), "", 2, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 4, tr("Método 2: "+doc.PaymentMethod2), "", 2, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 4, tr("Aceitamos PIX / Transferência"), "", 2, "L", false, 0, "")

	pdf.SetXY(pageWidth/2, y)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(pageWidth/2-marginX, 5, "OBRIGADO", "", 2, "R", false, 0, "")
	pdf.CellFormat(pageWidth/2-marginX, 5, tr("PELA PREFERÊNCIA"), "", 2, "R", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(pageWidth / 2)
	pdf.CellFormat(pageWidth/2-marginX, 5, tr(doc.Client.Name), "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(pageWidth / 2)
	pdf.CellFormat(pageWidth/2-marginX, 4, tr(doc.Client.Role), "", 2, "R", false, 0, "")

	// footer bands
	navy()
	pdf.Rect(0, 283, pageWidth, 14, "F")
	orange()
	pdf.Rect(pageWidth*0.45, 283, pageWidth*0.55, 14, "F")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
