package invoicer

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestTemplateFormat(t *testing.T) {
	on := NewDate(2024, time.October, 5)
	tests := []struct {
		template string
		want     string
	}{
		{DefaultNumberTemplate, "INV-202410-ACM"},
		{"{year}-{month}-{day}", "2024-10-5"},
		{"{year}{month:02d}{day:02d}", "20241005"},
		{"{client_code}/{invoice_number}", "ACM/007"},
		{"FLAT", "FLAT"},
	}
	for _, tt := range tests {
		tmpl, err := ParseTemplate(tt.template)
		if err != nil {
			t.Errorf("ParseTemplate(%q) error = %v", tt.template, err)
			continue
		}
		if got := tmpl.Format(on, "ACM", 7); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestParseTemplateRejectsUnknownPlaceholder(t *testing.T) {
	tests := []struct {
		template    string
		placeholder string
	}{
		{"INV-{foo}", "foo"},
		{"{year}-{quarter}", "quarter"},
		{"INV-{year", "year"},
	}
	for _, tt := range tests {
		_, err := ParseTemplate(tt.template)
		var terr *InvalidTemplateError
		if !errors.As(err, &terr) {
			t.Errorf("ParseTemplate(%q) error = %v, want InvalidTemplateError", tt.template, err)
			continue
		}
		if terr.Placeholder != tt.placeholder {
			t.Errorf("ParseTemplate(%q) placeholder = %q, want %q", tt.template, terr.Placeholder, tt.placeholder)
		}
	}
}

func TestInvoicePath(t *testing.T) {
	on := NewDate(2024, time.October, 5)
	got := InvoicePath("invoices", on, "ACM", "INV-202410-ACM")
	want := filepath.Join("invoices", "2024", "ACM", "Invoice_INV-202410-ACM.pdf")
	if got != want {
		t.Errorf("InvoicePath() = %q, want %q", got, want)
	}
}
