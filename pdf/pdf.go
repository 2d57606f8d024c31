// Package pdf renders assembled invoices to PDF files. It is the formatting
// collaborator of the core: page layout lives here and nowhere else.
package pdf

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/baskervilski/invoicer"
)

// brand colors, shared by header, table and totals
var (
	headerBlue = [3]int{0x2E, 0x86, 0xAB}
	totalPlum  = [3]int{0xA2, 0x3B, 0x72}
	rowGray    = [3]int{0xF8, 0xF9, 0xFA}
)

// Generator renders invoices on A4 portrait pages. The zero value is not
// usable; call New.
type Generator struct {
	orientation string
	unit        string
	size        string
}

func New() *Generator {
	return &Generator{orientation: "P", unit: "mm", size: "A4"}
}

// Render writes the invoice as a PDF file at path. The directory must exist.
func (g *Generator) Render(inv *invoicer.Invoice, path string) error {
	doc := gofpdf.New(g.orientation, g.unit, g.size, "")
	tr := doc.UnicodeTranslatorFromDescriptor("") // currency symbols are outside ASCII
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	g.header(doc, tr, inv)
	g.billTo(doc, tr, inv)
	g.lineItems(doc, tr, inv)
	g.totals(doc, tr, inv)
	g.footer(doc, tr, inv)

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: writing %q: %w", path, err)
	}
	return nil
}

func (g *Generator) header(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicer.Invoice) {
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(headerBlue[0], headerBlue[1], headerBlue[2])
	doc.CellFormat(95, 10, tr(inv.Company.Name), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 26)
	doc.SetTextColor(totalPlum[0], totalPlum[1], totalPlum[2])
	doc.CellFormat(75, 10, "INVOICE", "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	y := doc.GetY()
	doc.MultiCell(95, 4.5, tr(inv.Company.Address), "", "L", false)
	addrBottom := doc.GetY()

	doc.SetXY(115, y)
	details := fmt.Sprintf("Invoice #: %s\nDate: %s\nDue Date: Net 30 days",
		inv.Number, inv.Date.Format("January 2, 2006"))
	doc.MultiCell(75, 4.5, tr(details), "", "R", false)
	if doc.GetY() < addrBottom {
		doc.SetY(addrBottom)
	}

	doc.Ln(3)
	doc.SetDrawColor(headerBlue[0], headerBlue[1], headerBlue[2])
	doc.SetLineWidth(0.7)
	doc.Line(20, doc.GetY(), 190, doc.GetY())
	doc.Ln(8)
}

func (g *Generator) billTo(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicer.Invoice) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 5, "Bill To:", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	lines := []string{inv.Client.Name}
	if inv.Client.Address != "" {
		lines = append(lines, inv.Client.Address)
	}
	lines = append(lines, "Email: "+inv.Client.Email)
	doc.MultiCell(100, 4.5, tr(strings.Join(lines, "\n")), "", "L", false)
	doc.Ln(8)
}

func (g *Generator) lineItems(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicer.Invoice) {
	widths := []float64{60, 16, 22, 24, 24, 24}
	headers := []string{"Description", "Days", "Hours/Day", "Rate/Hour", "Total Hours", "Amount"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(headerBlue[0], headerBlue[1], headerBlue[2])
	doc.SetTextColor(255, 255, 255)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	doc.SetFillColor(rowGray[0], rowGray[1], rowGray[2])
	cells := []string{
		inv.Description,
		inv.DaysWorked.String(),
		inv.HoursPerDay.String(),
		inv.HourlyRate.String(),
		inv.TotalHours().String(),
		inv.Total().Round().String(),
	}
	aligns := []string{"L", "C", "C", "C", "C", "R"}
	for i, c := range cells {
		doc.CellFormat(widths[i], 8, tr(c), "1", 0, aligns[i], false, 0, "")
	}
	doc.Ln(-1)
	doc.Ln(8)
}

func (g *Generator) totals(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicer.Invoice) {
	total := inv.Total().Round()

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(36, 6, "Subtotal:", "", 0, "R", false, 0, "")
	doc.CellFormat(24, 6, tr(total.String()), "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(totalPlum[0], totalPlum[1], totalPlum[2])
	doc.CellFormat(110, 8, "", "", 0, "L", false, 0, "")
	doc.CellFormat(36, 8, "Total Amount Due:", "", 0, "R", false, 0, "")
	doc.CellFormat(24, 8, tr(total.String()), "B", 1, "R", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(10)
}

func (g *Generator) footer(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicer.Invoice) {
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(0, 5, "Payment Terms:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.MultiCell(0, 4.5, tr(inv.PaymentTerms), "", "L", false)
	doc.Ln(6)
	doc.MultiCell(0, 4.5, tr(inv.ThankYouNote), "", "L", false)
}
