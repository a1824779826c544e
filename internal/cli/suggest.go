package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/colour"
	"github.com/jmylchreest/hairhue/internal/palette"
)

func newSuggestCmd(a *app) *cobra.Command {
	var format string
	var preview bool

	cmd := &cobra.Command{
		Use:   "suggest <base-id>",
		Short: "Suggest accent colours for a base colour",
		Long: `Rank the palette colours that stand out against a base colour.

At most six accents are listed, strongest contrast first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			base := args[0]
			if !a.palette.Has(base) {
				return fmt.Errorf("unknown colour %q", base)
			}

			suggestions := palette.SuggestAccents(base, a.palette)
			if format == formatJSON {
				return writeJSON(out(cmd), suggestions)
			}

			preview = preview && isTerminal(out(cmd))
			t := swatchTable(preview, "ID", "NAME", "CONTRAST", "REASON")
			for _, s := range suggestions {
				addSwatchRow(t, preview, s.Color.Hex, s.Color.ID, s.Color.Name, fmt.Sprintf("%.2f", s.Contrast), s.Reason)
			}
			_, err := t.WriteTo(out(cmd))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour swatches when writing to a terminal")
	return cmd
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <a> <b>",
		Short: "Print the WCAG contrast ratio of two colours",
		Long: `Print the WCAG 2.0 contrast ratio of two colours.

Each argument is a hex value (#RRGGBB) or a palette colour id.

Examples:
  hairhue contrast "#1C1C1C" "#F5F5DC"
  hairhue contrast jet-black ice-blonde`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := colour.Contrast(a.resolveHex(args[0]), a.resolveHex(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "%.2f\n", ratio)
			return nil
		},
	}
}

// resolveHex maps a palette id to its hex value and leaves anything else
// untouched.
func (a *app) resolveHex(s string) string {
	if c, ok := a.palette.Lookup(s); ok {
		return c.Hex
	}
	return s
}
