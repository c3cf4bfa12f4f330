package main

import (
	"fmt"

	"github.com/philipparndt/polychain/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportSource sourceFlags
	exportOut    string
	exportASCII  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chain's tube mesh as STL",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportSource.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "chain.stl", "Output STL file")
	exportCmd.Flags().BoolVar(&exportASCII, "ascii", false, "Write ASCII STL instead of binary")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := exportSource.apply(cmd, cfg); err != nil {
		return err
	}

	_, group, err := loadChain(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	model := stl.FromGroup("polychain", group)
	if err := stl.WriteFile(exportOut, model, exportASCII); err != nil {
		return err
	}
	if _, err := stl.VerifyFile(exportOut, model.TriangleCount()); err != nil {
		return err
	}
	fmt.Printf("Wrote %d triangles (%d segments) to %s\n", model.TriangleCount(), group.Len(), exportOut)
	return nil
}
