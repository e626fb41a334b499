package main

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/audit"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List or export a table",
	Long: `List every entry of a table in table order.

With --out the table is written to a file and an audit event is recorded.
CBOR output uses canonical encoding, so unchanged tables export to
identical bytes.

Examples:
  # Show attribute types
  qoid list --table attr

  # Export the algorithm table
  qoid list --table alg --format json --out alg.json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listTable  string
	listFormat string
	listOut    string
)

func init() {
	flags := listCmd.Flags()
	flags.StringVarP(&listTable, "table", "t", "all", "Table to list")
	flags.StringVarP(&listFormat, "format", "f", formatText, "Output format: text, json, yaml, cbor")
	flags.StringVarP(&listOut, "out", "o", "", "Write to file instead of stdout")
}

func runList(cmd *cobra.Command, args []string) error {
	table, db, err := openTable(listTable)
	if err != nil {
		return err
	}

	resp := dto.TableResponse{
		TableInfo: dto.TableInfo{
			Name:        table,
			Description: oiddb.TableDescription(table),
			Entries:     db.Len(),
		},
		Items: make([]dto.Entry, 0, db.Len()),
	}
	for _, n := range db.All() {
		resp.Items = append(resp.Items, dto.NewEntry(n))
	}

	var buf bytes.Buffer
	if listFormat == formatText {
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "OID\tNAME\tKIND")
		_, _ = fmt.Fprintln(w, "---\t----\t----")
		for _, e := range resp.Items {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.OID, e.Name, e.Kind)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	} else if err := encode(&buf, listFormat, resp); err != nil {
		return err
	}

	if listOut == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(listOut, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", listOut, err)
	}
	if err := audit.LogTableExported(table, listFormat, listOut, len(resp.Items)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries from table %s to %s\n", len(resp.Items), table, listOut)
	return nil
}
