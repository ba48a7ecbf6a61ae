package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// renderGenerated writes passwords one per line in text mode, with the
// strength label on errOut so stdout stays pipeable.
func renderGenerated(out, errOut io.Writer, format string, g generated) error {
	switch format {
	case "json":
		return printJSON(out, g)
	case "yaml":
		return printYAML(out, g)
	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.AppendHeader(table.Row{"#", "Password", "Length", "Strength", "Score"})
		for i, p := range g.Passwords {
			t.AppendRow(table.Row{i + 1, p.Password, len(p.Password), g.Strength, p.Score})
		}
		t.Render()
		return nil
	default:
		for _, p := range g.Passwords {
			fmt.Fprintln(out, p.Password)
		}
		fmt.Fprintf(errOut, "Password Strength: %s\n", g.Strength)
		return nil
	}
}

func renderClassified(out io.Writer, format string, c classified) error {
	switch format {
	case "json":
		return printJSON(out, c)
	case "yaml":
		return printYAML(out, c)
	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.AppendHeader(table.Row{"Length", "Numbers", "Symbols", "Strength"})
		t.AppendRow(table.Row{c.Length, c.Numbers, c.Symbols, c.Strength})
		t.Render()
		return nil
	default:
		_, err := fmt.Fprintln(out, c.Strength)
		return err
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
