package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/polychain/pkg/analysis"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	infoSource sourceFlags
	infoLinks  int
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about a chain and its mesh",
	Long:  "Show point and link statistics, closure and self-intersection checks, bounding box, and tube mesh size.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoSource.register(infoCmd)
	infoCmd.Flags().IntVarP(&infoLinks, "links", "l", 0, "List the N longest links")
}

// loadChain fetches the configured chain and builds its tube group
func loadChain(ctx context.Context, cfg *config.Config) (chain.Chain, *mesh.Group, error) {
	src, err := cfg.ChainSource()
	if err != nil {
		return nil, nil, err
	}
	c, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, mesh.BuildChainWith(c, cfg.TubeOptions(), cfg.Material()), nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := infoSource.apply(cmd, cfg); err != nil {
		return err
	}

	c, group, err := loadChain(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	result := analysis.AnalyzeChain(c, group)

	fmt.Println("Chain Information")
	fmt.Println("=================")
	fmt.Printf("Source: %s\n\n", cfg.Source)

	fmt.Println("Chain Statistics:")
	fmt.Printf("  Points: %d\n", result.PointCount)
	fmt.Printf("  Links: %d\n", result.SegmentCount)
	fmt.Printf("  Closed: %t\n", result.IsLoop)
	fmt.Printf("  Lattice closed: %t\n", result.LatticeClosed)
	fmt.Printf("  Self-intersecting: %t\n", result.SelfIntersecting)
	if result.NonFinitePoints > 0 {
		fmt.Printf("  Non-finite points: %d\n", result.NonFinitePoints)
	}
	fmt.Println()

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Link Lengths:")
	fmt.Printf("  Total: %.6f units\n", result.TotalLength)
	fmt.Printf("  Minimum: %.6f units\n", result.MinLinkLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxLinkLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgLinkLength)

	fmt.Println("Tube Mesh:")
	fmt.Printf("  Segments: %d\n", group.Len())
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)

	if infoLinks > 0 {
		fmt.Printf("\nLongest %d links:\n", infoLinks)
		for _, l := range analysis.LongestLinks(result, infoLinks) {
			fmt.Printf("  #%d %s -> %s  %.6f\n", l.Index, analysis.FormatVector(l.Start), analysis.FormatVector(l.End), l.Length)
		}
	}
	return nil
}
