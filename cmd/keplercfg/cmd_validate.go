package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check map configs for broken invariants",
	Long: `Loads every file and reports duplicate layer ids, colors outside
[0, 255], invalid color ranges, unknown layer, scale and filter types and
out of range camera values. Exits non-zero if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := validateFile(path); err != nil {
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}

func validateFile(path string) error {
	doc, err := keplergl.Load(path)
	if err != nil {
		logger.Error("cannot load map config", zap.String("path", path), zap.Error(err))
		return err
	}
	err = keplergl.Validate(doc)
	logProblems(path, err)
	return err
}

func logProblems(path string, err error) {
	var verr *keplergl.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			logger.Warn(p.Msg, zap.String("path", path), zap.String("at", p.Path))
		}
	} else if err != nil {
		logger.Error("invalid map config", zap.String("path", path), zap.Error(err))
	}
}
