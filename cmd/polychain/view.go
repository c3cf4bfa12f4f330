package main

import (
	"log/slog"

	"github.com/philipparndt/polychain/internal/app"
	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	viewSource sourceFlags
	viewWatch  bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show a chain in a 3D window",
	Long: `Open a window and render the chain as tubes, one per link.
The window opens immediately; the chain appears once it has been fetched.
Press R to fetch a new one.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewSource.register(viewCmd)
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload when the chain file changes")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := viewSource.apply(cmd, cfg); err != nil {
		return err
	}

	src, err := cfg.ChainSource()
	if err != nil {
		return err
	}

	opts := app.Options{
		Source: src,
		Logger: slog.Default(),
	}
	if viewWatch {
		if cfg.Source != config.SourceFile {
			slog.Warn("--watch only applies to the file source", "source", cfg.Source)
		} else {
			opts.Watch = []string{cfg.File}
		}
	}

	return app.Run(cmd.Context(), scene.New(cfg), opts)
}
