package invoicer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WorkParams are the billable work inputs for one invoice.
type WorkParams struct {
	DaysWorked  decimal.Decimal
	HoursPerDay decimal.Decimal
	HourlyRate  Money
	Period      Period
	Description string
}

// Invoice is the computed document for one generation: identification,
// client snapshot, work inputs and derived totals. It is not persisted on its
// own; only the rendered file and the client's running totals survive it.
type Invoice struct {
	Number string
	Date   Date
	Period Period

	Company CompanyInfo
	Client  ClientRecord

	Description string
	DaysWorked  decimal.Decimal
	HoursPerDay decimal.Decimal
	HourlyRate  Money

	PaymentTerms string
	ThankYouNote string

	OutputPath string
}

// validate rejects non-positive work inputs before any file I/O or store
// mutation can happen.
func (p WorkParams) validate() error {
	if !p.DaysWorked.IsPositive() {
		return &InvalidInvoiceInputError{Field: "days_worked", Value: p.DaysWorked.String()}
	}
	if !p.HoursPerDay.IsPositive() {
		return &InvalidInvoiceInputError{Field: "hours_per_day", Value: p.HoursPerDay.String()}
	}
	if !p.HourlyRate.IsPositive() {
		return &InvalidInvoiceInputError{Field: "hourly_rate", Value: p.HourlyRate.Amount().String()}
	}
	return nil
}

// NewInvoice assembles the invoice document for a client and work
// parameters. Inputs are validated first; nothing is written here.
func NewInvoice(client *ClientRecord, number string, on Date, p WorkParams, cfg Config) (*Invoice, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Period.IsZero() {
		p.Period = PeriodOf(on)
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("Consulting services for %s", p.Period)
	}
	return &Invoice{
		Number:      number,
		Date:        on,
		Period:      p.Period,
		Company:     cfg.Company,
		Client:      *client,
		Description: p.Description,
		DaysWorked:  p.DaysWorked,
		HoursPerDay: p.HoursPerDay,
		HourlyRate:  p.HourlyRate,
		PaymentTerms: "Payment is due within 30 days of invoice date. " +
			"Late payments may incur additional charges.",
		ThankYouNote: fmt.Sprintf("Thank you for your business! For questions about this invoice, "+
			"please contact us at %s or %s.", cfg.Company.Email, cfg.Company.Phone),
	}, nil
}

// TotalHours is days_worked * hours_per_day, exact.
func (inv *Invoice) TotalHours() decimal.Decimal {
	return inv.DaysWorked.Mul(inv.HoursPerDay)
}

// DailyRate is hourly_rate * hours_per_day.
func (inv *Invoice) DailyRate() Money {
	return inv.HourlyRate.Mul(inv.HoursPerDay)
}

// Total is total_hours * hourly_rate, exact. The value is rounded to the
// currency's minor unit only when it is recorded against the client.
func (inv *Invoice) Total() Money {
	return inv.HourlyRate.Mul(inv.TotalHours())
}
