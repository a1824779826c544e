package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/prompt"
)

type promptOptions struct {
	preset          string
	noPreserveStyle bool
	maintenance     bool
	plain           bool
	simple          bool
}

func newPromptCmd(a *app) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "prompt [choice.json|-]",
		Short: "Compile a colour choice into an image-generation prompt",
		Long: `Compile a colour choice into the prompt sent to the image generator.

Examples:
  hairhue prompt my-choice.json
  hairhue prompt --preset sunset-ombre --maintenance
  hairhue prompt --preset honey-balayage --simple`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := choiceFromArgs(cmd, opts.preset, args)
			if err != nil {
				return err
			}

			if opts.simple {
				fmt.Fprintln(out(cmd), prompt.ToSimplePrompt(c, a.palette))
				return nil
			}

			o := prompt.DefaultOptions()
			o.PreserveStyle = !opts.noPreserveStyle
			o.IncludeMaintenanceInfo = opts.maintenance
			o.ProfessionalTerms = !opts.plain
			fmt.Fprintln(out(cmd), prompt.ToPrompt(c, a.palette, o))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.preset, "preset", "", "compile a preset instead of a file")
	f.BoolVar(&opts.noPreserveStyle, "no-preserve-style", false, "omit the keep-the-haircut clause")
	f.BoolVar(&opts.maintenance, "maintenance", false, "append the maintenance level")
	f.BoolVar(&opts.plain, "plain", false, "use everyday wording instead of salon terms")
	f.BoolVar(&opts.simple, "simple", false, "print the short form used for captions")
	return cmd
}
