package invoicer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ClientRecord is the full client document, one JSON file per client.
type ClientRecord struct {
	ID         string
	Name       string
	Email      string
	Company    string
	ClientCode string
	Address    string
	Phone      string
	Notes      string

	CreatedDate Date

	// Invoice statistics. RecordInvoice is the only mutation path for these
	// three fields.
	LastInvoiceDate Date // zero when the client was never invoiced
	TotalInvoices   int
	TotalAmount     Money
}

// Summary returns the subset of the record that is mirrored into the index.
func (c *ClientRecord) Summary() ClientSummary {
	return ClientSummary{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Company:         c.Company,
		ClientCode:      c.ClientCode,
		CreatedDate:     c.CreatedDate,
		LastInvoiceDate: c.LastInvoiceDate,
		TotalInvoices:   c.TotalInvoices,
	}
}

func (c ClientRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("email", c.Email)
	w.Append("company", c.Company)
	w.Append("client_code", c.ClientCode)
	w.Append("address", c.Address)
	w.Append("phone", c.Phone)
	w.Append("notes", c.Notes)
	w.Append("created_date", c.CreatedDate)
	if c.LastInvoiceDate.IsZero() {
		w.Append("last_invoice_date", nil)
	} else {
		w.Append("last_invoice_date", c.LastInvoiceDate)
	}
	w.Append("total_invoices", c.TotalInvoices)
	w.Append("total_amount", c.TotalAmount)
	return w.MarshalJSON()
}

func (c *ClientRecord) UnmarshalJSON(data []byte) error {
	// to parse a json, we use a dedicated local struct with tag annotation.
	var jc struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Email           string `json:"email"`
		Company         string `json:"company"`
		ClientCode      string `json:"client_code"`
		Address         string `json:"address"`
		Phone           string `json:"phone"`
		Notes           string `json:"notes"`
		CreatedDate     Date   `json:"created_date"`
		LastInvoiceDate *Date  `json:"last_invoice_date"`
		TotalInvoices   int    `json:"total_invoices"`
		TotalAmount     Money  `json:"total_amount"`
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	*c = ClientRecord{
		ID:            jc.ID,
		Name:          jc.Name,
		Email:         jc.Email,
		Company:       jc.Company,
		ClientCode:    jc.ClientCode,
		Address:       jc.Address,
		Phone:         jc.Phone,
		Notes:         jc.Notes,
		CreatedDate:   jc.CreatedDate,
		TotalInvoices: jc.TotalInvoices,
		TotalAmount:   jc.TotalAmount,
	}
	if jc.LastInvoiceDate != nil {
		c.LastInvoiceDate = *jc.LastInvoiceDate
	}
	return nil
}

// ClientSummary is the per-client entry of the index file.
type ClientSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	ClientCode      string `json:"client_code"`
	CreatedDate     Date   `json:"created_date"`
	LastInvoiceDate Date   `json:"last_invoice_date,omitzero"`
	TotalInvoices   int    `json:"total_invoices"`
}

// NewClientFields carries the user-supplied attributes for Create.
type NewClientFields struct {
	Name       string
	Email      string
	Company    string // defaults to Name
	ClientCode string // defaults to the first 3 letters of Name, uppercased
	Address    string
	Phone      string
	Notes      string
}

// ClientUpdate carries a plain field edit; nil fields are left unchanged.
// The id, creation date and invoice statistics cannot be edited.
type ClientUpdate struct {
	Name       *string
	Email      *string
	Company    *string
	ClientCode *string
	Address    *string
	Phone      *string
	Notes      *string
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// SlugID derives the stable client id from the company name (falling back to
// the client name): lowercased, runs of non-alphanumerics collapsed to a
// single underscore. "Acme Corporation" derives to "acme_corporation".
func SlugID(company, name string) string {
	source := company
	if strings.TrimSpace(source) == "" {
		source = name
	}
	slug := slugInvalid.ReplaceAllString(strings.ToLower(source), "_")
	return strings.Trim(slug, "_")
}

// DefaultClientCode derives a short client code from the name: the first
// three letters, uppercased.
func DefaultClientCode(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}
	return string(letters)
}

// validate checks the fields required to create a client.
func (f *NewClientFields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("client name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("client email is required")
	}
	if SlugID(f.Company, f.Name) == "" {
		return fmt.Errorf("cannot derive a client id from %q", f.Name)
	}
	return nil
}
