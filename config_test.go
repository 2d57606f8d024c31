package invoicer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"COMPANY_NAME", "HOURLY_RATE", "HOURS_PER_DAY", "CURRENCY", "CURRENCY_SYMBOL", "INVOICE_NUMBER_TEMPLATE", "INVOICES_DIR", "CLIENTS_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.True(t, cfg.HourlyRate.Equal(M(75, "EUR")))
	assert.Equal(t, "8", cfg.HoursPerDay.String())
	assert.Equal(t, DefaultNumberTemplate, cfg.NumberTemplate)
	assert.Equal(t, "invoices", cfg.InvoicesDir)
	assert.Equal(t, "clients", cfg.ClientsDir)
	assert.False(t, cfg.Mail.Configured())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CURRENCY", "usd")
	t.Setenv("HOURLY_RATE", "120.50")
	t.Setenv("COMPANY_EMAIL", "me@corp.example")
	t.Setenv("MICROSOFT_SENDER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency, "currency codes are normalized to uppercase")
	assert.True(t, cfg.HourlyRate.Equal(M(120.50, "USD")))
	assert.Equal(t, "me@corp.example", cfg.Mail.Sender, "sender defaults to the company email")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CURRENCY", "EURO")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("CURRENCY", "EUR")
	t.Setenv("HOURLY_RATE", "-5")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("HOURLY_RATE", "75")
	t.Setenv("HOURS_PER_DAY", "zero")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("EUR"))
	assert.NoError(t, ValidateCurrency("USD"))
	assert.Error(t, ValidateCurrency("eur"))
	assert.Error(t, ValidateCurrency("EURO"))
	assert.Error(t, ValidateCurrency(""))
}

func TestMailConfigured(t *testing.T) {
	full := MailSettings{
		ClientID:     "client-id",
		ClientSecret: "s3cret",
		TenantID:     "tenant-id",
		Sender:       "me@corp.example",
	}
	assert.True(t, full.Configured())

	// The sample placeholders from a fresh .env must not count as
	// configured: sending degrades instead of attempting a real round-trip.
	placeholders := full
	placeholders.ClientID = "your-client-id-here"
	placeholders.ClientSecret = "your-client-secret-here"
	placeholders.TenantID = "your-tenant-id-here"
	assert.False(t, placeholders.Configured())

	partial := full
	partial.ClientSecret = "your-client-secret-here"
	assert.False(t, partial.Configured())

	assert.False(t, MailSettings{}.Configured())
}

func TestMailStatusIgnoresPlaceholders(t *testing.T) {
	cfg := Config{Mail: MailSettings{
		ClientID:     "your-client-id-here",
		ClientSecret: "s3cret",
		TenantID:     "",
	}}
	status := cfg.MailStatus()
	assert.False(t, status["Client ID"], "sample placeholders do not count as configured")
	assert.True(t, status["Client Secret"])
	assert.False(t, status["Tenant ID"])
}
