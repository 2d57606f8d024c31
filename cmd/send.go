package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer"
)

type sendCmd struct {
	client string
}

func (*sendCmd) Name() string     { return "send" }
func (*sendCmd) Synopsis() string { return "email a previously generated invoice" }
func (*sendCmd) Usage() string {
	return `send -client <client-id> <invoice.pdf>

  Emails an existing invoice PDF to the client's billing address
  through the configured Microsoft Graph account. The invoice number
  is taken from the file name.
`
}

func (c *sendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "client id (required)")
}

func (c *sendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected -client flag and exactly one invoice file argument.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read invoice file: %v\n", err)
		return subcommands.ExitFailure
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

	client, err := store.Get(c.client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	inv := &invoicer.Invoice{
		Number:     invoiceNumberFromPath(path),
		Date:       invoicer.Today(),
		Period:     invoicer.CurrentPeriod(),
		Company:    cfg.Company,
		Client:     *client,
		OutputPath: path,
	}

	if err := dispatchInvoice(ctx, cfg, inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending invoice: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Invoice %s emailed to %s\n", inv.Number, client.Email)
	return subcommands.ExitSuccess
}

// invoiceNumberFromPath recovers the invoice number from a file name
// like "Invoice_INV-202410-ACM.pdf".
func invoiceNumberFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimPrefix(name, "Invoice_")
}
