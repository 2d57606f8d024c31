package invoicer

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// CompanyInfo is the issuer identity printed on invoices and emails.
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// MailSettings are the Microsoft Graph app credentials. They are optional:
// when incomplete the mail collaborator degrades to "not configured" instead
// of failing the whole process.
type MailSettings struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	Sender       string // mailbox the invoice is sent from, defaults to the company email
}

// Configured reports whether all required credentials carry real values.
// The sample placeholders written by init do not count: sending must degrade
// to "not configured" until they are replaced.
func (m MailSettings) Configured() bool {
	return !placeholderCredential(m.ClientID) &&
		!placeholderCredential(m.ClientSecret) &&
		!placeholderCredential(m.TenantID) &&
		m.Sender != ""
}

// Config is the explicit configuration value object, constructed once at
// process start and passed by parameter. The store, numbering and assembly
// components never read the environment themselves.
type Config struct {
	Company CompanyInfo

	HourlyRate     Money
	HoursPerDay    decimal.Decimal
	Currency       string
	CurrencySymbol string
	NumberTemplate string

	InvoicesDir string
	ClientsDir  string

	Mail MailSettings
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks a 3-letter currency code.
func ValidateCurrency(code string) error {
	if !currencyCode.MatchString(code) {
		return fmt.Errorf("currency code must be 3 uppercase letters (e.g., USD, EUR, GBP), got %q", code)
	}
	return nil
}

// LoadConfig builds the configuration from the environment, loading a .env
// file first when one is present in the working directory.
func LoadConfig() (Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
			return value
		}
		return defaultValue
	}

	cfg := Config{
		Company: CompanyInfo{
			Name:    getEnv("COMPANY_NAME", "Your Company Name"),
			Address: getEnv("COMPANY_ADDRESS", "Your Address\nCity, State ZIP\nCountry"),
			Email:   getEnv("COMPANY_EMAIL", "your.email@example.com"),
			Phone:   getEnv("COMPANY_PHONE", "+1 (555) 123-4567"),
		},
		Currency:       strings.ToUpper(getEnv("CURRENCY", "EUR")),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "€"),
		NumberTemplate: getEnv("INVOICE_NUMBER_TEMPLATE", DefaultNumberTemplate),
		InvoicesDir:    getEnv("INVOICES_DIR", "invoices"),
		ClientsDir:     getEnv("CLIENTS_DIR", "clients"),
		Mail: MailSettings{
			ClientID:     getEnv("MICROSOFT_CLIENT_ID", ""),
			ClientSecret: getEnv("MICROSOFT_CLIENT_SECRET", ""),
			TenantID:     getEnv("MICROSOFT_TENANT_ID", ""),
		},
	}
	cfg.Mail.Sender = getEnv("MICROSOFT_SENDER", cfg.Company.Email)

	if err := ValidateCurrency(cfg.Currency); err != nil {
		return Config{}, err
	}

	rate, err := decimal.NewFromString(getEnv("HOURLY_RATE", "75.0"))
	if err != nil || !rate.IsPositive() {
		return Config{}, fmt.Errorf("invalid HOURLY_RATE: must be a number greater than 0")
	}
	cfg.HourlyRate = M(rate, cfg.Currency)

	cfg.HoursPerDay, err = decimal.NewFromString(getEnv("HOURS_PER_DAY", "8.0"))
	if err != nil || !cfg.HoursPerDay.IsPositive() {
		return Config{}, fmt.Errorf("invalid HOURS_PER_DAY: must be a number greater than 0")
	}

	return cfg, nil
}

// SampleEnv is the .env template written by the init command. The credential
// placeholders are treated as "not configured" by the status report.
const SampleEnv = `# Company Information
COMPANY_NAME=Your Company Name
COMPANY_ADDRESS=Your Address
COMPANY_EMAIL=your.email@example.com
COMPANY_PHONE=+1 (555) 123-4567

# Invoice Settings
HOURLY_RATE=75.0
HOURS_PER_DAY=8.0
CURRENCY=EUR
CURRENCY_SYMBOL=€
INVOICE_NUMBER_TEMPLATE=INV-{year}{month:02d}-{client_code}

# Microsoft Graph API Settings (Required for email)
# Get these from your Microsoft App Registration
MICROSOFT_CLIENT_ID=your-client-id-here
MICROSOFT_CLIENT_SECRET=your-client-secret-here
MICROSOFT_TENANT_ID=your-tenant-id-here
`

// placeholderCredential reports whether the value is empty or still the
// sample placeholder from SampleEnv.
func placeholderCredential(v string) bool {
	return v == "" || strings.HasPrefix(v, "your-")
}

// MailStatus reports, per credential, whether it is actually configured,
// without revealing any secret value.
func (c Config) MailStatus() map[string]bool {
	return map[string]bool{
		"Client ID":     !placeholderCredential(c.Mail.ClientID),
		"Client Secret": !placeholderCredential(c.Mail.ClientSecret),
		"Tenant ID":     !placeholderCredential(c.Mail.TenantID),
	}
}
