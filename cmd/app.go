// Package cmd implements the CLI application to manage clients and generate
// invoices. A main package calls Register() and then Execute() on the
// user-selected subcommand.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addClientCmd{}, "clients")
	c.Register(&listClientsCmd{}, "clients")
	c.Register(&showClientCmd{}, "clients")
	c.Register(&searchClientsCmd{}, "clients")
	c.Register(&editClientCmd{}, "clients")
	c.Register(&deleteClientCmd{}, "clients")

	c.Register(&generateCmd{}, "invoices")
	c.Register(&runCmd{}, "invoices")
	c.Register(&sendCmd{}, "invoices")

	c.Register(&initCmd{}, "workspace")
	c.Register(&samplesCmd{}, "workspace")
	c.Register(&configCmd{}, "workspace")
	c.Register(&checkCmd{}, "workspace")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var clientsDir = flag.String("clients-dir", "", "Path to the clients directory (overrides the configuration)")
var invoicesDir = flag.String("invoices-dir", "", "Path to the invoices directory (overrides the configuration)")

// loadConfig builds the application configuration once, applying the
// directory flag overrides.
func loadConfig() (invoicer.Config, error) {
	cfg, err := invoicer.LoadConfig()
	if err != nil {
		return invoicer.Config{}, err
	}
	if *clientsDir != "" {
		cfg.ClientsDir = *clientsDir
	}
	if *invoicesDir != "" {
		cfg.InvoicesDir = *invoicesDir
	}
	return cfg, nil
}

// openStore is the central function to open the client store.
func openStore(cfg invoicer.Config) (*invoicer.Store, error) {
	return invoicer.NewStore(cfg.ClientsDir)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. no TTY capability detected).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/n): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// promptLine reads one line of input, returning fallback when the answer is empty.
func promptLine(reader *bufio.Reader, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s (default: %s): ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
