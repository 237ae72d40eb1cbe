// Package cmd implements the CLI application to manage company accounts.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/finstat/finstat"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tableCmd{}, "reports")
	c.Register(&commonsizeCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&cashflowCmd{}, "derivation")
	c.Register(&taxCmd{}, "derivation")

	c.Register(&fmtCmd{}, "file")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountsFile = flag.String("accounts-file", "accounts.hjson", "Path to the accounts file (hjson format)")

// DecodeAccounts loads the app accounts file.
func DecodeAccounts() (a *finstat.Accounts, err error) {
	a, err = finstat.ReadAccountsFile(*accountsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, accounts file does not exist, starting from an empty book instead")
		a, err = finstat.NewAccounts(""), nil
	}
	return
}

// EncodeAccounts writes the book back to the app accounts file.
func EncodeAccounts(a *finstat.Accounts) subcommands.ExitStatus {
	if err := finstat.WriteAccountsFile(*accountsFile, a); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing accounts file %q: %v\n", *accountsFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. On a rendering error the
// raw markdown is printed instead, still perfectly readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
