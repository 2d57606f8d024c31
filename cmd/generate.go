package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/baskervilski/invoicer"
	"github.com/baskervilski/invoicer/mail"
	"github.com/baskervilski/invoicer/pdf"
)

type generateCmd struct {
	client      string
	days        string
	hoursPerDay string
	rate        string
	period      string
	description string
	date        string
	force       bool
	send        bool
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a PDF invoice for a client" }
func (*generateCmd) Usage() string {
	return `generate -client <client-id> -days <days> [-hours-per-day <hours>] [-rate <rate>] [-period <period>] [-description <text>] [-date <date>] [-force] [-send]

  Generates one day-rate invoice:
  - days is the number of days worked in the billing period (fractions allowed).
  - hours-per-day and rate default to the configured values.
  - period defaults to the current month, e.g. "October 2024" or "2024-10".
  - date is the invoice issue date, default today.

  The PDF is written under <invoices-dir>/<year>/<client-code>/ and the
  client's invoicing statistics are updated. Use -send to also email the
  invoice to the client.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "client id (required)")
	f.StringVar(&c.days, "days", "", "days worked, e.g. 15 or 12.5 (required)")
	f.StringVar(&c.hoursPerDay, "hours-per-day", "", "hours per day (default from configuration)")
	f.StringVar(&c.rate, "rate", "", "hourly rate (default from configuration)")
	f.StringVar(&c.period, "period", "", "billing period, e.g. \"October 2024\" (default current month)")
	f.StringVar(&c.description, "description", "", "service description printed on the invoice")
	f.StringVar(&c.date, "date", "", "invoice date YYYY-MM-DD (default today)")
	f.BoolVar(&c.force, "force", false, "overwrite an existing invoice file")
	f.BoolVar(&c.send, "send", false, "email the invoice to the client after generating it")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" || c.days == "" {
		fmt.Fprintln(os.Stderr, "Error: -client and -days flags are required.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening client store: %v\n", err)
		return subcommands.ExitFailure
	}

	req := invoicer.GenerateRequest{
		ClientID:    c.client,
		Description: c.description,
		Force:       c.force,
	}
	if req.DaysWorked, err = decimal.NewFromString(c.days); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -days value %q: %v\n", c.days, err)
		return subcommands.ExitUsageError
	}
	if c.hoursPerDay != "" {
		if req.HoursPerDay, err = decimal.NewFromString(c.hoursPerDay); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -hours-per-day value %q: %v\n", c.hoursPerDay, err)
			return subcommands.ExitUsageError
		}
	}
	if c.rate != "" {
		rate, err := decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -rate value %q: %v\n", c.rate, err)
			return subcommands.ExitUsageError
		}
		req.HourlyRate = invoicer.M(rate, cfg.Currency)
	}
	if c.period != "" {
		if req.Period, err = invoicer.ParsePeriod(c.period); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -period value %q: %v\n", c.period, err)
			return subcommands.ExitUsageError
		}
	}
	if c.date != "" {
		if req.Date, err = invoicer.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -date value %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	inv, err := invoicer.Generate(store, cfg, pdf.New(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating invoice: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Invoice %s generated: %s (total %s)\n", inv.Number, inv.OutputPath, inv.Total())

	if c.send {
		if err := dispatchInvoice(ctx, cfg, inv); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending invoice: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Invoice %s emailed to %s\n", inv.Number, inv.Client.Email)
	}
	return subcommands.ExitSuccess
}

// dispatchInvoice emails a generated invoice to its client.
func dispatchInvoice(ctx context.Context, cfg invoicer.Config, inv *invoicer.Invoice) error {
	body, err := mail.InvoiceBody(inv)
	if err != nil {
		return err
	}
	return mail.NewSender(cfg).Send(ctx, mail.Message{
		To:             inv.Client.Email,
		Subject:        mail.Subject(inv),
		HTMLBody:       body,
		AttachmentPath: inv.OutputPath,
	})
}
