package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baskervilski/invoicer"
)

func testInvoice() *invoicer.Invoice {
	return &invoicer.Invoice{
		Number: "INV-202410-ACM",
		Date:   invoicer.NewDate(2024, time.October, 31),
		Period: invoicer.Period{Year: 2024, Month: time.October},
		Company: invoicer.CompanyInfo{
			Name:    "Example Consulting",
			Address: "Main Street 1\n1234 AB Amsterdam",
			Email:   "me@example.com",
			Phone:   "+31 6 1234 5678",
		},
		Client: invoicer.ClientRecord{
			ID:         "acme_corporation",
			Name:       "Acme Corporation",
			Email:      "billing@acme.example",
			Company:    "Acme Corporation",
			ClientCode: "ACM",
			Address:    "Acme Plaza\nMetropolis",
		},
		Description:  "Consulting services for October 2024",
		DaysWorked:   decimal.NewFromInt(15),
		HoursPerDay:  decimal.NewFromInt(8),
		HourlyRate:   invoicer.M(75, "EUR"),
		PaymentTerms: "Payment is due within 30 days of invoice date.",
		ThankYouNote: "Thank you for your business!",
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, New().Render(testInvoice(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "output starts with the PDF magic")
}

func TestRenderBadPath(t *testing.T) {
	err := New().Render(testInvoice(), filepath.Join(t.TempDir(), "missing", "invoice.pdf"))
	assert.Error(t, err, "parent directories are the caller's responsibility")
}
