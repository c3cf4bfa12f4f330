package main

import (
	"log/slog"

	"github.com/philipparndt/polychain/pkg/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveLength int
	serveDebug  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve random closed chains over HTTP",
	Long: `Run the chain service. GET /data_helper answers with a freshly generated
closed chain, double JSON encoded. POST /data_helper logs the body.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config, :5000)")
	serveCmd.Flags().IntVarP(&serveLength, "length", "n", 0, "Nodes per chain (even, default from config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Run gin in debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("length") {
		cfg.Server.ChainLength = serveLength
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return server.New(cfg.Server, slog.Default(), serveDebug).Run(cmd.Context())
}
