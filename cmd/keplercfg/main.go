package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	keplergl "github.com/flywave/go-keplergl"
	"github.com/flywave/go-keplergl/config"
)

var (
	// Global flags
	verbose      bool
	settingsPath string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "keplercfg",
	Short: "Inspect, convert and generate kepler.gl map configs",
	Long: `keplercfg works on saved kepler.gl map configurations (JSON or YAML).

It validates documents, converts between JSON and YAML, builds new maps
from settings, fits the camera to a bounding box, prints color ranges and
turns the map filters into SQL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "TOML settings file (default: built-in settings)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(rampCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSettings() (config.Settings, error) {
	s, err := config.Load(settingsPath)
	if err != nil {
		return config.Settings{}, err
	}
	logger.Debug("settings loaded", zap.String("path", settingsPath), zap.String("style", s.Style.Type))
	return s, nil
}

// writeDocument saves doc to output, or prints it to the command's
// stdout in format f when output is empty.
func writeDocument(cmd *cobra.Command, doc *keplergl.Document, output string, f keplergl.Format) error {
	if output == "" {
		return doc.EncodeFormat(cmd.OutOrStdout(), f)
	}
	if err := keplergl.Save(output, doc); err != nil {
		return err
	}
	logger.Info("map config written", zap.String("path", output))
	return nil
}
