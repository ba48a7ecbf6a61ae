package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/generator"
)

type classified struct {
	Length   int    `json:"length" yaml:"length"`
	Numbers  bool   `json:"numbers" yaml:"numbers"`
	Symbols  bool   `json:"symbols" yaml:"symbols"`
	Strength string `json:"strength" yaml:"strength"`
}

func newStrengthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "strength",
		Short: "Print the strength label for a configuration",
		Long: `Print Weak, Medium or Strong for the given length and character sets.

Strong needs 12+ characters with digits and symbols; Medium needs 8+ characters
with digits or symbols; everything else is Weak.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config()
			return renderClassified(cmd.OutOrStdout(), opts.output, classified{
				Length:   cfg.Length,
				Numbers:  cfg.IncludeDigits,
				Symbols:  cfg.IncludeSymbols,
				Strength: generator.Classify(cfg).String(),
			})
		},
	}
}
