package main

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"crater-scan/internal/detection"
	"crater-scan/internal/scanner"
)

// Version is set by ldflags during build.
var Version = "dev"

func main() {
	cfg := scanner.Config{Options: detection.DefaultOptions()}
	verbose := false

	root := &cobra.Command{
		Use:   "crater-scan",
		Short: "Detect elliptical crater rims in planetary surface imagery",
		Long: `crater-scan walks a dataset of grayscale planetary surface images,
detects approximately elliptical crater rims in each one, and writes a flat
CSV of ellipse parameters keyed by the canonical image identifier
(<level1>/<level2>/<filename-without-extension>). Images that yield no
qualifying rims contribute a single sentinel row with -1 in every numeric
field.`,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().
				Timestamp().
				Logger()

			return scanner.Run(cfg, log)
		},
	}

	root.Flags().StringVarP(&cfg.Root, "root", "r", "", "dataset root directory")
	root.Flags().StringVarP(&cfg.Output, "output", "o", "solution.csv", "output CSV path")
	root.Flags().IntVarP(&cfg.Workers, "workers", "w", runtime.NumCPU(), "number of parallel image workers")
	root.Flags().StringVar(&cfg.OverlayDir, "overlay-dir", "", "write per-image detection overlays under this directory")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.MarkFlagRequired("root")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
