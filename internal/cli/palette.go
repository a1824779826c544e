package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/palette"
)

type paletteOptions struct {
	premium bool
	family  string
	format  string
	preview bool
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the hair colour palette",
		Long: `List the colours clients can choose from.

Premium colours are hidden unless --premium is given.

Examples:
  # Standard colours as a table
  hairhue palette

  # Every blonde, premium included, with colour swatches
  hairhue palette --premium --family blonde --preview

  # Machine-readable output
  hairhue palette --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPalette(cmd, a, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.premium, "premium", false, "include premium colours")
	cmd.Flags().StringVar(&opts.family, "family", "", "only list one family (black, brunette, blonde, ...)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches when writing to a terminal")

	return cmd
}

func runPalette(cmd *cobra.Command, a *app, opts *paletteOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	colors := a.palette.Available(opts.premium)
	if opts.family != "" {
		f := palette.Family(opts.family)
		if !f.Valid() {
			return fmt.Errorf("unknown family %q", opts.family)
		}
		filtered := colors[:0]
		for _, c := range colors {
			if c.Family == f {
				filtered = append(filtered, c)
			}
		}
		colors = filtered
	}

	if opts.format == formatJSON {
		return writeJSON(out(cmd), colors)
	}

	preview := opts.preview && isTerminal(out(cmd))
	t := swatchTable(preview, "ID", "NAME", "HEX", "FAMILY", "PREMIUM")
	for _, c := range colors {
		premium := ""
		if c.IsPremium {
			premium = "yes"
		}
		addSwatchRow(t, preview, c.Hex, c.ID, c.Name, c.Hex, string(c.Family), premium)
	}
	_, err := t.WriteTo(out(cmd))
	return err
}
