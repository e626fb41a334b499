package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveTable string

var resolveCmd = &cobra.Command{
	Use:   "resolve OID...",
	Short: "Print the registered name of each OID",
	Long: `Print the registered name of each OID, one per line.

An OID without a registered name is printed unchanged. Malformed input
is an error.

Examples:
  qoid resolve 2.5.4.3
  qoid resolve --table ext 2.5.29.19 2.5.29.15`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveTable, "table", "t", "all", "Table to search")
}

func runResolve(cmd *cobra.Command, args []string) error {
	_, db, err := openTable(resolveTable)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		name, err := db.Resolve(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, name)
	}
	return nil
}
