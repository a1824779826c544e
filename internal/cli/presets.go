package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/preset"
	"github.com/jmylchreest/hairhue/internal/prompt"
)

const descriptionWidth = 48

func newPresetsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the curated colour presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			presets := preset.All()
			if format == formatJSON {
				return writeJSON(out(cmd), presets)
			}

			t := NewTable("ID", "LABEL", "TYPE", "DESCRIPTION")
			t.SetColumnMaxWidth(3, descriptionWidth)
			for _, p := range presets {
				t.AddRow(p.ID, p.Label, string(p.Choice.Type), p.Description)
			}
			_, err := t.WriteTo(out(cmd))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	cmd.AddCommand(newPresetShowCmd(a))
	return cmd
}

func newPresetShowCmd(a *app) *cobra.Command {
	var withPrompt bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := preset.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown preset %q", args[0])
			}

			w := out(cmd)
			fmt.Fprintf(w, "%s (%s)\n", p.Label, p.ID)
			fmt.Fprintf(w, "  %s\n", p.Description)
			fmt.Fprintf(w, "  maintenance: %s\n", choice.MaintenanceLevel(p.Choice, a.palette))
			if res := choice.Validate(p.Choice, a.palette); !res.OK {
				fmt.Fprintf(w, "  invalid against this palette: %s\n", res.Reason)
			}
			if withPrompt {
				fmt.Fprintf(w, "  prompt: %s\n", prompt.ToPrompt(p.Choice, a.palette, prompt.DefaultOptions()))
			}
			fmt.Fprintln(w)
			return writeJSON(w, p.Choice)
		},
	}
	cmd.Flags().BoolVar(&withPrompt, "prompt", false, "also print the compiled prompt")
	return cmd
}
