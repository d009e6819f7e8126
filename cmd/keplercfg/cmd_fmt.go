package main

import (
	"github.com/spf13/cobra"

	keplergl "github.com/flywave/go-keplergl"
)

var (
	fmtOutput string
	fmtTo     string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Normalize a map config or convert it between JSON and YAML",
	Long: `Rewrites FILE in canonical member order. With --output the format
follows the output extension, otherwise the document is printed in the
--to format (default: the input format).

Example:
  keplercfg fmt map.json --output map.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "Output file (default: stdout)")
	fmtCmd.Flags().StringVar(&fmtTo, "to", "", "Output format for stdout: json or yaml")
}

func runFmt(cmd *cobra.Command, args []string) error {
	in := args[0]
	doc, err := keplergl.Load(in)
	if err != nil {
		return err
	}

	f, err := keplergl.FormatOf(in)
	if err != nil {
		return err
	}
	if fmtTo != "" {
		if f, err = keplergl.ParseFormat(fmtTo); err != nil {
			return err
		}
	}
	return writeDocument(cmd, doc, fmtOutput, f)
}
