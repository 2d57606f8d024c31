package invoicer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultNumberTemplate is the invoice number template used when none is configured.
const DefaultNumberTemplate = "INV-{year}{month:02d}-{client_code}"

// Template is a parsed invoice number template. The placeholder set is
// closed: {year}, {month}, {month:02d}, {day}, {day:02d}, {client_code} and
// {invoice_number}. Anything else fails parsing with InvalidTemplateError.
type Template struct {
	raw   string
	parts []templatePart
}

type templatePart struct {
	literal     string
	placeholder string // one of the recognized names, empty for a literal
}

// formats maps each recognized placeholder to its formatting function.
var formats = map[string]func(on Date, clientCode string, seq int) string{
	"year":           func(on Date, _ string, _ int) string { return fmt.Sprintf("%d", on.Year()) },
	"month":          func(on Date, _ string, _ int) string { return fmt.Sprintf("%d", int(on.Month())) },
	"month:02d":      func(on Date, _ string, _ int) string { return fmt.Sprintf("%02d", int(on.Month())) },
	"day":            func(on Date, _ string, _ int) string { return fmt.Sprintf("%d", on.Day()) },
	"day:02d":        func(on Date, _ string, _ int) string { return fmt.Sprintf("%02d", on.Day()) },
	"client_code":    func(_ Date, code string, _ int) string { return code },
	"invoice_number": func(_ Date, _ string, seq int) string { return fmt.Sprintf("%03d", seq) },
}

// ParseTemplate tokenizes a template into literals and recognized
// placeholders. An unknown or unterminated placeholder is an
// InvalidTemplateError, detected here, before any number or path is computed.
func ParseTemplate(raw string) (*Template, error) {
	t := &Template{raw: raw}
	rest := raw
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if rest != "" {
				t.parts = append(t.parts, templatePart{literal: rest})
			}
			return t, nil
		}
		if open > 0 {
			t.parts = append(t.parts, templatePart{literal: rest[:open]})
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, &InvalidTemplateError{Placeholder: rest}
		}
		name := rest[:end]
		if _, ok := formats[name]; !ok {
			return nil, &InvalidTemplateError{Placeholder: name}
		}
		t.parts = append(t.parts, templatePart{placeholder: name})
		rest = rest[end+1:]
	}
}

// String returns the raw template.
func (t *Template) String() string { return t.raw }

// Format renders the invoice number for the given date, client code and
// per-client sequence value. The sequence must be read from the store
// immediately before formatting so the count is never stale.
func (t *Template) Format(on Date, clientCode string, seq int) string {
	var b strings.Builder
	for _, p := range t.parts {
		if p.placeholder == "" {
			b.WriteString(p.literal)
			continue
		}
		b.WriteString(formats[p.placeholder](on, clientCode, seq))
	}
	return b.String()
}

// InvoicePath returns the deterministic output location for an invoice:
// <invoicesDir>/<year>/<client_code>/Invoice_<number>.pdf.
func InvoicePath(invoicesDir string, on Date, clientCode, number string) string {
	return filepath.Join(
		invoicesDir,
		fmt.Sprintf("%d", on.Year()),
		clientCode,
		fmt.Sprintf("Invoice_%s.pdf", number),
	)
}
