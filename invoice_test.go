package invoicer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Company: CompanyInfo{
			Name:  "Example Consulting",
			Email: "me@example.com",
			Phone: "+31 6 1234 5678",
		},
		HourlyRate:     M(75, "EUR"),
		HoursPerDay:    decimal.NewFromInt(8),
		Currency:       "EUR",
		CurrencySymbol: "€",
		NumberTemplate: DefaultNumberTemplate,
		InvoicesDir:    "invoices",
		ClientsDir:     "clients",
	}
}

func testClient() *ClientRecord {
	return &ClientRecord{
		ID:         "acme_corporation",
		Name:       "Acme Corporation",
		Email:      "billing@acme.example",
		Company:    "Acme Corporation",
		ClientCode: "ACM",
	}
}

func TestNewInvoiceTotals(t *testing.T) {
	params := WorkParams{
		DaysWorked:  decimal.NewFromInt(15),
		HoursPerDay: decimal.NewFromInt(8),
		HourlyRate:  M(75, "EUR"),
	}
	on := NewDate(2024, time.October, 31)
	inv, err := NewInvoice(testClient(), "INV-202410-ACM", on, params, testConfig())
	require.NoError(t, err)

	assert.Equal(t, "120", inv.TotalHours().String())
	assert.True(t, inv.DailyRate().Equal(M(600, "EUR")))
	assert.True(t, inv.Total().Equal(M(9000, "EUR")), "15 days x 8h x 75 = 9000.00")

	// Period and description default from the invoice date.
	assert.Equal(t, Period{Year: 2024, Month: time.October}, inv.Period)
	assert.Equal(t, "Consulting services for October 2024", inv.Description)
}

func TestNewInvoiceFractionalTotal(t *testing.T) {
	params := WorkParams{
		DaysWorked:  decimal.RequireFromString("12.5"),
		HoursPerDay: decimal.RequireFromString("7.5"),
		HourlyRate:  M(80.10, "EUR"),
	}
	inv, err := NewInvoice(testClient(), "INV-202410-ACM", Today(), params, testConfig())
	require.NoError(t, err)

	// The total stays exact; rounding happens only when recording.
	assert.Equal(t, "7509.375", inv.Total().Amount().String())
}

func TestNewInvoiceRejectsNonPositiveInputs(t *testing.T) {
	valid := WorkParams{
		DaysWorked:  decimal.NewFromInt(15),
		HoursPerDay: decimal.NewFromInt(8),
		HourlyRate:  M(75, "EUR"),
	}
	tests := []struct {
		field  string
		mutate func(*WorkParams)
	}{
		{"days_worked", func(p *WorkParams) { p.DaysWorked = decimal.NewFromInt(-1) }},
		{"days_worked", func(p *WorkParams) { p.DaysWorked = decimal.Zero }},
		{"hours_per_day", func(p *WorkParams) { p.HoursPerDay = decimal.Zero }},
		{"hourly_rate", func(p *WorkParams) { p.HourlyRate = M(-75, "EUR") }},
	}
	for _, tt := range tests {
		params := valid
		tt.mutate(&params)
		_, err := NewInvoice(testClient(), "N", Today(), params, testConfig())
		var ierr *InvalidInvoiceInputError
		require.ErrorAs(t, err, &ierr, "field %s", tt.field)
		assert.Equal(t, tt.field, ierr.Field)
	}
}
