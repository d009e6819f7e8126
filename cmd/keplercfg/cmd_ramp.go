package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flywave/go-keplergl/color"
)

var (
	rampFrom    string
	rampTo      string
	rampSteps   int
	rampReverse bool
	rampList    bool
)

var rampCmd = &cobra.Command{
	Use:   "ramp [NAME]",
	Short: "Print a color range for use in a layer config",
	Long: `Prints a built-in color range, optionally resampled to --steps stops,
or a new range interpolated between --from and --to. Stops are
interpolated in HSLuv so they look evenly spaced.

Example:
  keplercfg ramp "Global Warming" --steps 9
  keplercfg ramp --from "#0198BD" --to "#D50255" --steps 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRamp,
}

func init() {
	rampCmd.Flags().StringVar(&rampFrom, "from", "", "First stop of a new range")
	rampCmd.Flags().StringVar(&rampTo, "to", "", "Last stop of a new range")
	rampCmd.Flags().IntVarP(&rampSteps, "steps", "n", 0, "Number of stops (default: keep)")
	rampCmd.Flags().BoolVarP(&rampReverse, "reverse", "r", false, "Reverse the range")
	rampCmd.Flags().BoolVar(&rampList, "list", false, "List the built-in ranges")
}

func runRamp(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if rampList {
		for _, name := range color.RangeNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	var r color.Range
	switch {
	case len(args) == 1:
		var ok bool
		if r, ok = color.LookupRange(args[0]); !ok {
			return fmt.Errorf("unknown color range %q", args[0])
		}
	case rampFrom != "" && rampTo != "":
		n := rampSteps
		if n == 0 {
			n = 6
		}
		stops, err := color.Interpolate(rampFrom, rampTo, n)
		if err != nil {
			return err
		}
		r = color.Range{Name: "Custom", Type: color.Sequential, Category: "Custom", Colors: stops}
	default:
		return fmt.Errorf("give a range NAME or both --from and --to")
	}

	if rampSteps > 0 && rampSteps != len(r.Colors) {
		var err error
		if r, err = r.Resample(rampSteps); err != nil {
			return err
		}
	}
	if rampReverse {
		r = r.Reverse()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
