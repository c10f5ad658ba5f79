package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wI2L/jsondiff"

	jsonsyntax "github.com/mcvoid/jsonsyntax"
	"github.com/mcvoid/jsonsyntax/jsonvalue"
)

// readInput reads path, or stdin if path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parseFlexible parses data in strict or flexible mode per the --flexible
// flag shared by validate, print and canonicalize (spec.md §6 "Parser
// options"). diff has no --flexible flag and always parses strictly.
func parseFlexible(data []byte, flexible bool) (jsonsyntax.Value, *jsonsyntax.CodeMap, error) {
	opts := jsonsyntax.Options{}
	if flexible {
		opts.AcceptTruncatedSurrogatePair = true
		opts.AcceptInvalidCodepoints = true
	}
	return jsonsyntax.Parse(data, opts)
}

func addFlexibleFlag(cmd *cobra.Command, flexible *bool) {
	cmd.Flags().BoolVar(flexible, "flexible", false,
		"accept truncated surrogate pairs and invalid code points as U+FFFD")
}

func newValidateCmd(logCfg *logConfig) *cobra.Command {
	var flexible bool
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that input is well-formed JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logCfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("jsonfmt: %w", err)
			}

			_, cm, err := parseFlexible(data, flexible)
			if err != nil {
				logger.Error("invalid JSON", "error", err)
				return err
			}
			logger.Info("valid JSON", "fragments", cm.Len())
			return nil
		},
	}
	addFlexibleFlag(cmd, &flexible)
	return cmd
}

func newPrintCmd() *cobra.Command {
	var flexible bool
	var profile string
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Re-print JSON using a named preset or a YAML profile file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("jsonfmt: %w", err)
			}

			v, _, err := parseFlexible(data, flexible)
			if err != nil {
				return err
			}

			opts, err := resolvePrintOptions(profile)
			if err != nil {
				return err
			}
			if err := jsonsyntax.Print(cmd.OutOrStdout(), &v, opts); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	addFlexibleFlag(cmd, &flexible)
	cmd.Flags().StringVar(&profile, "profile", "pretty",
		"pretty, compact, inline, or a path to a YAML profile file")
	return cmd
}

func newCanonicalizeCmd() *cobra.Command {
	var flexible bool
	cmd := &cobra.Command{
		Use:   "canonicalize [file]",
		Short: "Print the RFC 8785 canonical form of a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("jsonfmt: %w", err)
			}

			v, _, err := parseFlexible(data, flexible)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), jsonsyntax.Canonical(&v))
			return err
		},
	}
	addFlexibleFlag(cmd, &flexible)
	return cmd
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <before.json> <after.json>",
		Short: "Show a structural JSON Patch (RFC 6902) diff between two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			beforeData, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("jsonfmt: before: %w", err)
			}
			afterData, err := readInput(args[1])
			if err != nil {
				return fmt.Errorf("jsonfmt: after: %w", err)
			}

			beforeV, _, err := jsonsyntax.Parse(beforeData, jsonsyntax.Options{})
			if err != nil {
				return fmt.Errorf("jsonfmt: before: %w", err)
			}
			afterV, _, err := jsonsyntax.Parse(afterData, jsonsyntax.Options{})
			if err != nil {
				return fmt.Errorf("jsonfmt: after: %w", err)
			}
			beforeV.Canonicalize()
			afterV.Canonicalize()

			beforeAny, err := jsonvalue.ToAny(&beforeV)
			if err != nil {
				return err
			}
			afterAny, err := jsonvalue.ToAny(&afterV)
			if err != nil {
				return err
			}

			patch, err := jsondiff.Compare(beforeAny, afterAny)
			if err != nil {
				return fmt.Errorf("jsonfmt: diff: %w", err)
			}

			raw, err := json.Marshal(patch)
			if err != nil {
				return fmt.Errorf("jsonfmt: marshal patch: %w", err)
			}
			patchValue, _, err := jsonsyntax.Parse(raw, jsonsyntax.Options{})
			if err != nil {
				return fmt.Errorf("jsonfmt: reparse patch: %w", err)
			}

			if err := jsonsyntax.Print(cmd.OutOrStdout(), &patchValue, jsonsyntax.Pretty()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	return cmd
}
