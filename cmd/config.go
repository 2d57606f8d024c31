package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
)

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show the effective configuration" }
func (*configCmd) Usage() string {
	return `config

  Prints the configuration as resolved from the .env file, the
  environment and the built-in defaults. Credentials are reported as
  set or missing, never printed.
`
}
func (*configCmd) SetFlags(*flag.FlagSet) {}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Company")
	fmt.Printf("  Name:    %s\n", cfg.Company.Name)
	fmt.Printf("  Email:   %s\n", cfg.Company.Email)
	fmt.Printf("  Phone:   %s\n", cfg.Company.Phone)
	fmt.Printf("  Address: %s\n", cfg.Company.Address)

	fmt.Println("Invoicing")
	fmt.Printf("  Hourly rate:     %s\n", cfg.HourlyRate)
	fmt.Printf("  Hours per day:   %s\n", cfg.HoursPerDay)
	fmt.Printf("  Currency:        %s (%s)\n", cfg.Currency, cfg.CurrencySymbol)
	fmt.Printf("  Number template: %s\n", cfg.NumberTemplate)
	fmt.Printf("  Invoices dir:    %s\n", cfg.InvoicesDir)
	fmt.Printf("  Clients dir:     %s\n", cfg.ClientsDir)

	fmt.Println("Mail (Microsoft Graph)")
	status := cfg.MailStatus()
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		state := "missing"
		if status[k] {
			state = "set"
		}
		fmt.Printf("  %s: %s\n", k, state)
	}
	if cfg.Mail.Configured() {
		fmt.Printf("  Sender: %s\n", cfg.Mail.Sender)
	} else {
		fmt.Println("  Sending disabled until all credentials are set.")
	}
	return subcommands.ExitSuccess
}
