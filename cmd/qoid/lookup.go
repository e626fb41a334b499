package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/oid"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

var (
	lookupOID    string
	lookupName   string
	lookupTable  string
	lookupFormat string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find a single entry by OID or by name",
	Long: `Find a single entry by OID or by exact name. Names are case-sensitive.

A missing entry is an error.

Examples:
  qoid lookup --oid 2.5.4.3
  qoid lookup --name inetOrgPerson --table obj --format yaml`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	flags := lookupCmd.Flags()
	flags.StringVar(&lookupOID, "oid", "", "Dotted OID to look up")
	flags.StringVar(&lookupName, "name", "", "Registered name to look up")
	flags.StringVarP(&lookupTable, "table", "t", "all", "Table to search")
	flags.StringVarP(&lookupFormat, "format", "f", formatText, "Output format: text, json, yaml")
}

func runLookup(cmd *cobra.Command, args []string) error {
	if (lookupOID == "") == (lookupName == "") {
		return fmt.Errorf("exactly one of --oid or --name is required")
	}
	if lookupFormat == formatCBOR {
		return fmt.Errorf("unsupported format: %s", lookupFormat)
	}

	table, db, err := openTable(lookupTable)
	if err != nil {
		return err
	}

	var n *oiddb.NamedOID
	if lookupOID != "" {
		id, err := oid.Parse(lookupOID)
		if err != nil {
			return err
		}
		if n = db.ByOID(id); n == nil {
			return fmt.Errorf("%w: %s in table %s", oiddb.ErrNotFound, id, table)
		}
	} else {
		if n = db.ByName(lookupName); n == nil {
			return fmt.Errorf("%w: name %q in table %s", oiddb.ErrNotFound, lookupName, table)
		}
	}

	entry := dto.NewEntry(n)
	if lookupFormat == formatText {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.OID, entry.Name, entry.Kind)
		return nil
	}
	return encode(cmd.OutOrStdout(), lookupFormat, entry)
}
