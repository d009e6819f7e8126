package main

import (
	"fmt"

	"github.com/spf13/cobra"

	keplergl "github.com/flywave/go-keplergl"
	"github.com/flywave/go-keplergl/filtersql"
)

var (
	sqlData  string
	sqlTable string
)

var sqlCmd = &cobra.Command{
	Use:   "sql FILE",
	Short: "Print a SQL query applying the map filters to one dataset",
	Long: `Translates the select, multi select, range and time range filters on
--data into a WHERE clause around --table (default: the dataset name).

Example:
  keplercfg sql map.json --data Trips --table trips_2022`,
	Args: cobra.ExactArgs(1),
	RunE: runSQL,
}

func init() {
	sqlCmd.Flags().StringVar(&sqlData, "data", "", "Dataset id as referenced by the map (required)")
	sqlCmd.Flags().StringVar(&sqlTable, "table", "", "Table or subquery to select from")
	_ = sqlCmd.MarkFlagRequired("data")
}

func runSQL(cmd *cobra.Command, args []string) error {
	doc, err := keplergl.Load(args[0])
	if err != nil {
		return err
	}
	if sqlData == "" {
		return fmt.Errorf("--data is required")
	}
	table := sqlTable
	if table == "" {
		table = sqlData
	}
	where := filtersql.FilterString(doc.Config.VisState.Filters, sqlData)
	fmt.Fprintf(cmd.OutOrStdout(), "SELECT * FROM %s\n", filtersql.WrapWhere(table, where))
	return nil
}
