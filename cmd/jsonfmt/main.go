// Command jsonfmt is a small CLI front end over the jsonsyntax package:
// validate, re-print, canonicalize, and diff JSON documents. It is
// explicitly out of scope for the core library (spec.md §1: "CLI, I/O, and
// file reading" are named external collaborators), so it lives under
// cmd/ and only ever talks to jsonsyntax/jsonvalue through their public
// APIs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the jsonfmt root command with every subcommand wired
// in. Split out from main so tests can exercise the CLI surface without a
// process boundary.
func newRootCmd() *cobra.Command {
	logCfg := newLogConfig()

	root := &cobra.Command{
		Use:           "jsonfmt",
		Short:         "Validate, print, canonicalize and diff JSON documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	logCfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newValidateCmd(logCfg),
		newPrintCmd(),
		newCanonicalizeCmd(),
		newDiffCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
