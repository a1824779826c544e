package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/colour"
	"github.com/jmylchreest/hairhue/internal/preset"
)

// Output formats shared by the listing commands.
const (
	formatTable = "table"
	formatJSON  = "json"
)

var formats = []string{formatTable, formatJSON}

const swatchWidth = 4

func checkFormat(f string) error {
	if !slices.Contains(formats, f) {
		return fmt.Errorf("invalid format %q (want one of %s)", f, strings.Join(formats, ", "))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether w is a terminal. Anything other than an
// *os.File, such as a test buffer, is not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// swatchTable creates a table with a leading swatch column when previews are
// on.
func swatchTable(preview bool, headers ...string) *Table {
	if preview {
		headers = append([]string{""}, headers...)
	}
	return NewTable(headers...)
}

// addSwatchRow adds cells, preceded by a block of hex when previews are on.
func addSwatchRow(t *Table, preview bool, hex string, cells ...string) {
	if !preview {
		t.AddRow(cells...)
		return
	}
	block := ""
	if rgb, err := colour.ParseHex(hex); err == nil {
		block = colour.Swatch(rgb, swatchWidth)
	}
	t.AddRow(append([]string{block}, cells...)...)
}

// readChoice decodes a ColorChoice from a file, or stdin when path is "-".
func readChoice(cmd *cobra.Command, path string) (choice.ColorChoice, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return choice.ColorChoice{}, fmt.Errorf("failed to open choice file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var c choice.ColorChoice
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return choice.ColorChoice{}, fmt.Errorf("failed to decode choice: %w", err)
	}
	return c, nil
}

// choiceFromArgs resolves the choice from --preset or the single argument.
func choiceFromArgs(cmd *cobra.Command, presetID string, args []string) (choice.ColorChoice, error) {
	switch {
	case presetID != "" && len(args) > 0:
		return choice.ColorChoice{}, fmt.Errorf("use either --preset or a choice file, not both")
	case presetID != "":
		p, ok := preset.Lookup(presetID)
		if !ok {
			return choice.ColorChoice{}, fmt.Errorf("unknown preset %q", presetID)
		}
		return p.Choice, nil
	case len(args) == 1:
		return readChoice(cmd, args[0])
	}
	return choice.ColorChoice{}, fmt.Errorf("a choice file, - for stdin, or --preset is required")
}
