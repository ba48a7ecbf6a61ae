package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/service"
)

// generated is the rendered form of a generate run.
type generated struct {
	Length    int              `json:"length" yaml:"length"`
	Numbers   bool             `json:"numbers" yaml:"numbers"`
	Symbols   bool             `json:"symbols" yaml:"symbols"`
	Strength  string           `json:"strength" yaml:"strength"`
	Passwords []scoredPassword `json:"passwords" yaml:"passwords"`
}

type scoredPassword struct {
	Password string  `json:"password" yaml:"password"`
	Score    int     `json:"score" yaml:"score"`
	Entropy  float64 `json:"entropy" yaml:"entropy"`
}

func runGenerate(cmd *cobra.Command, deps Deps, opts *options) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	cfg := opts.config()
	if cfg.Length != opts.length {
		slog.Warn("length clamped", "requested", opts.length, "used", cfg.Length)
	}

	gen := generator.New(deps.Source)
	out := generated{
		Length:    cfg.Length,
		Numbers:   cfg.IncludeDigits,
		Symbols:   cfg.IncludeSymbols,
		Strength:  generator.Classify(cfg).String(),
		Passwords: make([]scoredPassword, 0, opts.count),
	}
	for i := 0; i < opts.count; i++ {
		pw, err := gen.Generate(cfg)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		est := service.Estimate(pw)
		out.Passwords = append(out.Passwords, scoredPassword{Password: pw, Score: est.Score, Entropy: est.Entropy})
	}
	slog.Debug("generated passwords", "count", opts.count, "length", cfg.Length, "strength", out.Strength)

	if err := renderGenerated(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.output, out); err != nil {
		return err
	}

	if opts.copy {
		copyLast(cmd, deps.Clipboard, out.Passwords[len(out.Passwords)-1].Password)
	}
	return nil
}

// copyLast reports the copy outcome on stderr. A failed copy is not an error.
func copyLast(cmd *cobra.Command, w clipboard.Writer, password string) {
	ctx, cancel := context.WithTimeout(cmd.Context(), copyTimeout)
	defer cancel()

	res := clipboard.Copy(ctx, w, password)
	if !res.OK() {
		slog.Warn("clipboard copy failed", "error", res.Err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), res.Message())
}
