package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/spf13/cobra"
)

var (
	genLength      int
	genTrials      int
	genSeed        uint64
	genMaxAttempts int
	genOut         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random closed chain",
	Long: `Draw biased lattice random walks until one closes without crossing itself.
The chain is written in the chain service's wire format, without the
closing origin. With --trials, only the number of rejected walks per
trial is reported.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genLength, "length", "n", 0, "Nodes per chain (even, default from config)")
	generateCmd.Flags().IntVarP(&genTrials, "trials", "t", 0, "Run this many trials and report attempt statistics")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Random seed (0 = time based)")
	generateCmd.Flags().IntVar(&genMaxAttempts, "max-attempts", 0, "Give up after this many rejected walks (0 = no limit)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the payload to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	length := cfg.Generate.Length
	if cmd.Flags().Changed("length") {
		length = genLength
	}
	seed := cfg.Generate.Seed
	if cmd.Flags().Changed("seed") {
		seed = genSeed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	maxAttempts := cfg.Generate.MaxAttempts
	if cmd.Flags().Changed("max-attempts") {
		maxAttempts = genMaxAttempts
	}

	src := chain.NewRand(seed)

	if genTrials > 0 {
		started := time.Now()
		result, err := chain.RunTrials(cmd.Context(), length, genTrials, src, func(trial, attempts int) {
			fmt.Printf("Trial %d: %d rejected walks\n", trial, attempts)
		})
		if err != nil {
			return err
		}
		fmt.Printf("\nAverage rejected walks: %.2f over %d trials (%s)\n",
			result.Average, genTrials, time.Since(started).Round(time.Millisecond))
		return nil
	}

	c, attempts, err := chain.GenerateClosedChain(cmd.Context(), length, src, maxAttempts)
	if err != nil {
		return err
	}

	payload, err := chain.EncodePayload(c[:len(c)-1])
	if err != nil {
		return err
	}

	if genOut == "" {
		fmt.Println(string(payload))
		return nil
	}

	if dir := filepath.Dir(genOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(genOut, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", genOut, err)
	}
	fmt.Printf("Wrote %d-node chain to %s after %d rejected walks (seed %d)\n", length, genOut, attempts, seed)
	return nil
}
