package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/baskervilski/invoicer"
	"github.com/baskervilski/invoicer/pdf"
	"github.com/baskervilski/invoicer/renderer"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "generate an invoice interactively" }
func (*runCmd) Usage() string {
	return `run

  Walks through invoice generation step by step: pick a client, enter
  the days worked and optional overrides, preview the totals, then
  generate the PDF and optionally email it.
`
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summaries, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing clients: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(summaries) == 0 {
		fmt.Println("No clients found. Use 'add-client' or 'init' first.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ClientListMarkdown(summaries))
	in := bufio.NewReader(os.Stdin)

	id := promptLine(in, "Client id", "")
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: a client id is required.")
		return subcommands.ExitFailure
	}

	req := invoicer.GenerateRequest{ClientID: id}

	days := promptLine(in, "Days worked", "")
	if req.DaysWorked, err = decimal.NewFromString(days); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid days value %q: %v\n", days, err)
		return subcommands.ExitFailure
	}

	hours := promptLine(in, "Hours per day", cfg.HoursPerDay.String())
	if req.HoursPerDay, err = decimal.NewFromString(hours); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid hours value %q: %v\n", hours, err)
		return subcommands.ExitFailure
	}

	rate := promptLine(in, fmt.Sprintf("Hourly rate (%s)", cfg.Currency), cfg.HourlyRate.Amount().String())
	rateDec, err := decimal.NewFromString(rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid rate value %q: %v\n", rate, err)
		return subcommands.ExitFailure
	}
	req.HourlyRate = invoicer.M(rateDec, cfg.Currency)

	period := promptLine(in, "Billing period", invoicer.CurrentPeriod().String())
	if req.Period, err = invoicer.ParsePeriod(period); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid period %q: %v\n", period, err)
		return subcommands.ExitFailure
	}

	req.Description = promptLine(in, "Description",
		fmt.Sprintf("Consulting services - %s", req.Period))

	total := req.HourlyRate.Mul(req.DaysWorked.Mul(req.HoursPerDay))
	fmt.Printf("\n  %s days x %s h x %s = %s\n\n",
		req.DaysWorked, req.HoursPerDay, req.HourlyRate, total.Round())

	if !confirm("Generate this invoice?") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	inv, err := invoicer.Generate(store, cfg, pdf.New(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating invoice: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Invoice %s generated: %s\n", inv.Number, inv.OutputPath)

	if cfg.Mail.Configured() && confirm(fmt.Sprintf("Email it to %s?", inv.Client.Email)) {
		if err := dispatchInvoice(ctx, cfg, inv); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending invoice: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Invoice %s emailed to %s\n", inv.Number, inv.Client.Email)
	}
	return subcommands.ExitSuccess
}
