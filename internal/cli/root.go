// Package cli provides the command-line interface for hairhue.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hairhue/internal/config"
	"github.com/jmylchreest/hairhue/internal/logging"
	"github.com/jmylchreest/hairhue/internal/palette"
	"github.com/jmylchreest/hairhue/internal/version"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	configFile string
	verbose    bool

	cfg     *config.Config
	logger  hclog.Logger
	palette *palette.Palette
}

// NewRootCmd builds the hairhue command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hairhue",
		Short: "Hair colour palette, validation and prompt tooling",
		Long: `hairhue manages a salon hair colour palette: it suggests accent colours,
validates colour choices, compiles them into image-generation prompts and
serves all of it over HTTP.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.configFile, "config", "", "config file (default ./hairhue.yaml)")
	flags.String("palette", "", "palette YAML file (default: built-in palette)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON")

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		newPaletteCmd(a),
		newSuggestCmd(a),
		newContrastCmd(a),
		newValidateCmd(a),
		newPromptCmd(a),
		newPresetsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		File:  a.configFile,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	})

	if cfg.Palette.File == "" {
		a.palette = palette.Default()
		return nil
	}

	p, err := palette.LoadFile(cfg.Palette.File)
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}
	a.logger.Debug("loaded palette", "file", cfg.Palette.File, "colors", p.Len())
	a.palette = p
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// out is a small helper so commands never write to os.Stdout directly.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
