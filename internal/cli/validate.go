package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/choice"
)

// errRejected is returned when a choice fails validation, so the process
// exits non-zero after the reason has been printed.
var errRejected = errors.New("choice rejected")

func newValidateCmd(a *app) *cobra.Command {
	var presetID, format string

	cmd := &cobra.Command{
		Use:   "validate [choice.json|-]",
		Short: "Check a colour choice before submitting it",
		Long: `Validate a colour choice against the palette.

The choice is read as JSON from a file, from stdin when the argument is -,
or taken from a preset. The command exits non-zero when the choice is
rejected.

Examples:
  hairhue validate my-choice.json
  echo '{"type":"single-tone","singleTone":{"colorId":"auburn"}}' | hairhue validate -
  hairhue validate --preset honey-balayage`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			c, err := choiceFromArgs(cmd, presetID, args)
			if err != nil {
				return err
			}

			res := choice.Validate(c, a.palette)
			if format == formatJSON {
				if err := writeJSON(out(cmd), res); err != nil {
					return err
				}
			} else {
				printResult(cmd, res)
			}

			if !res.OK {
				a.logger.Debug("choice rejected", "reason", res.Reason)
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&presetID, "preset", "", "validate a preset instead of a file")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	return cmd
}

func printResult(cmd *cobra.Command, res choice.ValidationResult) {
	w := out(cmd)
	if res.OK {
		fmt.Fprintln(w, "ok")
		return
	}
	fmt.Fprintf(w, "rejected: %s\n", res.Reason)
	if res.Suggestion != "" {
		fmt.Fprintf(w, "suggestion: %s\n", res.Suggestion)
	}
}
