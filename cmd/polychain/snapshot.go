package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/philipparndt/polychain/pkg/scene"
	"github.com/philipparndt/polychain/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	snapshotSource sourceFlags
	snapshotOut    string
	snapshotFrame  bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the chain to a PNG without opening a window",
	Args:  cobra.NoArgs,
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotSource.register(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "chain.png", "Output PNG file")
	snapshotCmd.Flags().BoolVar(&snapshotFrame, "frame", false, "Aim the camera at the chain instead of the configured view")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := snapshotSource.apply(cmd, cfg); err != nil {
		return err
	}

	sc := scene.New(cfg)
	src, err := cfg.ChainSource()
	if err != nil {
		return err
	}
	c, err := src.Load(cmd.Context())
	if err != nil {
		return err
	}
	sc.Attach(sc.Build(c))

	cam := viewer.NewCamera(sc.Camera)
	if snapshotFrame {
		cam.Frame(sc.Group().Bounds())
	}
	img := viewer.RenderScene(sc, cam, sc.Width, sc.Height)

	f, err := os.Create(snapshotOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", snapshotOut, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	fmt.Printf("Wrote %dx%d snapshot of %d segments to %s\n", sc.Width, sc.Height, sc.Group().Len(), snapshotOut)
	return nil
}
