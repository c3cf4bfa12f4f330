package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "polychain",
	Short: "Generate, serve and view closed polymer chains",
	Long: `polychain renders closed lattice polymer chains as tube meshes.
Chains come from a built-in sample, a chain service, a file, or the local
random walk generator. The same generator can be served over HTTP.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads --config over the defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// sourceFlags selects where a command gets its chain from
type sourceFlags struct {
	source   string
	endpoint string
	file     string
	length   int
	seed     uint64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", config.SourceStatic, "Chain source: static, remote, file or generate")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "Chain service URL for the remote source")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Vertex payload file for the file source")
	cmd.Flags().IntVarP(&f.length, "length", "n", 0, "Node count for the generate source")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed for the generate source (0 = time based)")
}

// apply copies flags the user set onto cfg and validates the result
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = f.source
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if flags.Changed("file") {
		cfg.File = f.file
		if !flags.Changed("source") {
			cfg.Source = config.SourceFile
		}
	}
	if flags.Changed("length") {
		cfg.Generate.Length = f.length
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = f.seed
	}
	return cfg.Validate()
}
