// Package renderer builds the markdown reports printed by the CLI: client
// listings, client details, search results and invoice summaries.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/baskervilski/invoicer"
)

// ClientListMarkdown renders the client listing as a markdown table.
func ClientListMarkdown(clients []invoicer.ClientSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Clients (%d)", len(clients)))

	if len(clients) == 0 {
		doc.PlainText("No clients found. Use `add-client` to create your first client.")
		doc.Build()
		return buf.String()
	}

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		last := "never"
		if !c.LastInvoiceDate.IsZero() {
			last = c.LastInvoiceDate.String()
		}
		rows = append(rows, []string{
			c.ID, c.Name, c.Email, c.ClientCode,
			fmt.Sprintf("%d", c.TotalInvoices), last,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Email", "Code", "Invoices", "Last Invoice"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}

// ClientMarkdown renders the full detail view of one client record.
func ClientMarkdown(c *invoicer.ClientRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.Name)

	orNA := func(s string) string {
		if s == "" {
			return "n/a"
		}
		return s
	}
	last := "never"
	if !c.LastInvoiceDate.IsZero() {
		last = c.LastInvoiceDate.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", c.ID},
			{"Email", c.Email},
			{"Company", orNA(c.Company)},
			{"Client Code", c.ClientCode},
			{"Phone", orNA(c.Phone)},
			{"Created", c.CreatedDate.String()},
			{"Last Invoice", last},
			{"Total Invoices", fmt.Sprintf("%d", c.TotalInvoices)},
			{"Total Amount", c.TotalAmount.String()},
		},
	})
	if c.Address != "" {
		doc.H2("Address")
		doc.PlainText(c.Address)
	}
	if c.Notes != "" {
		doc.H2("Notes")
		doc.PlainText(c.Notes)
	}

	doc.Build()
	return buf.String()
}

// SearchResultsMarkdown renders the matches of a client search.
func SearchResultsMarkdown(query string, matches []*invoicer.ClientRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search Results for %q (%d found)", query, len(matches)))

	if len(matches) == 0 {
		doc.PlainText(fmt.Sprintf("No clients found matching %q.", query))
		doc.Build()
		return buf.String()
	}

	rows := make([][]string, 0, len(matches))
	for _, c := range matches {
		rows = append(rows, []string{c.ID, c.Name, c.Email, c.Company})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Email", "Company"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}

// InvoiceMarkdown renders the summary of a generated (or about to be
// generated) invoice.
func InvoiceMarkdown(inv *invoicer.Invoice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Invoice %s", inv.Number))

	doc.Table(md.TableSet{
		Header: []string{md.Bold("Total Amount Due"), md.Bold(inv.Total().Round().String())},
		Rows: [][]string{
			{"Client", inv.Client.Name},
			{"Period", inv.Period.String()},
			{"Days worked", inv.DaysWorked.String()},
			{"Hours per day", inv.HoursPerDay.String()},
			{"Hourly rate", inv.HourlyRate.String()},
			{"Total hours", inv.TotalHours().String()},
			{"Date", inv.Date.String()},
		},
	})
	if inv.OutputPath != "" {
		doc.PlainText(fmt.Sprintf("File: `%s`", inv.OutputPath))
	}

	doc.Build()
	return buf.String()
}
