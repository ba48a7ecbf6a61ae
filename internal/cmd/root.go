// Package cmd implements the CLI commands for passgen.
package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
)

// Version is set at build time.
var Version = "dev"

const copyTimeout = 2 * time.Second

// Deps are the collaborators the commands use. Zero values select the real
// implementations.
type Deps struct {
	Source    generator.IndexSource
	Clipboard clipboard.Writer
}

type options struct {
	length   int
	numbers  bool
	symbols  bool
	count    int
	copy     bool
	output   string
	logLevel string
}

func (o options) config() generator.Config {
	return generator.Config{
		Length:         generator.ClampLength(o.length),
		IncludeDigits:  o.numbers,
		IncludeSymbols: o.symbols,
	}
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.System{}
	}
	opts := &options{}

	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen generates random passwords from letters, optionally mixed with
digits and symbols, and labels the configuration Weak, Medium or Strong.

Passwords come from a non-cryptographic random source. Do not use them for
secrets that require unpredictability guarantees.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(opts.output); err != nil {
				return err
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: config.ParseLevel(opts.logLevel),
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, deps, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&opts.length, "length", "l", generator.DefaultLength, "password length, clamped to 6-100")
	pf.BoolVarP(&opts.numbers, "numbers", "n", false, "include digits (0-9)")
	pf.BoolVarP(&opts.symbols, "symbols", "s", false, "include symbols")
	pf.StringVarP(&opts.output, "output", "o", "text", "output format [text|json|yaml|table]")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "possible values are debug, info, warn, error")

	root.Flags().IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	root.Flags().BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")

	root.AddCommand(newStrengthCmd(opts))

	return root
}

// Execute runs the root command with the real dependencies.
func Execute() error {
	return NewRootCmd(Deps{}).Execute()
}

func validateOutput(format string) error {
	switch format {
	case "text", "json", "yaml", "table":
		return nil
	}
	return fmt.Errorf("unknown output format %q; use text, json, yaml or table", format)
}
