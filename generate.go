package invoicer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// Renderer turns an assembled invoice into a file on disk. The page layout
// is entirely the renderer's concern.
type Renderer interface {
	Render(inv *Invoice, path string) error
}

// GenerateRequest drives one invoice generation. Zero-valued work inputs
// fall back to the configured defaults; a zero date means today.
type GenerateRequest struct {
	ClientID    string
	DaysWorked  decimal.Decimal
	HoursPerDay decimal.Decimal
	HourlyRate  Money
	Period      Period
	Description string
	Date        Date
	Force       bool // overwrite an existing invoice file
}

// Generate runs one full invoice generation against the store: look the
// client up, read its fresh sequence value, format the number, assemble and
// validate the document, render the PDF and record the invoice on the client
// record. Any validation failure happens before a file is created or a
// statistic is mutated.
func Generate(store *Store, cfg Config, r Renderer, req GenerateRequest) (*Invoice, error) {
	tmpl, err := ParseTemplate(cfg.NumberTemplate)
	if err != nil {
		return nil, err
	}

	client, err := store.Get(req.ClientID)
	if err != nil {
		return nil, err
	}

	params := WorkParams{
		DaysWorked:  req.DaysWorked,
		HoursPerDay: req.HoursPerDay,
		HourlyRate:  req.HourlyRate,
		Period:      req.Period,
		Description: req.Description,
	}
	if params.HoursPerDay.IsZero() {
		params.HoursPerDay = cfg.HoursPerDay
	}
	if params.HourlyRate.IsZero() {
		params.HourlyRate = cfg.HourlyRate
	}

	on := req.Date
	if on.IsZero() {
		on = Today()
	}

	// The sequence is read from the store right before formatting, so two
	// invoices for the same client never share a number.
	seq, err := store.NextSequence(client.ID)
	if err != nil {
		return nil, err
	}
	number := tmpl.Format(on, client.ClientCode, seq)

	inv, err := NewInvoice(client, number, on, params, cfg)
	if err != nil {
		return nil, err
	}
	inv.OutputPath = InvoicePath(cfg.InvoicesDir, on, client.ClientCode, number)

	if !req.Force {
		if _, err := os.Stat(inv.OutputPath); err == nil {
			return nil, &DuplicateInvoiceError{Path: inv.OutputPath}
		}
	}

	if err := os.MkdirAll(filepath.Dir(inv.OutputPath), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create invoice directory: %w", err)
	}
	if err := r.Render(inv, inv.OutputPath); err != nil {
		return nil, fmt.Errorf("cannot render invoice %s: %w", number, err)
	}

	if _, err := store.RecordInvoice(client.ID, inv.Total(), on); err != nil {
		return nil, err
	}
	return inv, nil
}
