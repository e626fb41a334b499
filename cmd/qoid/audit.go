package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/pkg/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log management",
	Long: `Commands for verifying and reading audit logs.

The audit log records server starts and stops, table exports and table
generation. Each event is chained to the previous one with a SHA-256 hash.

Examples:
  # Verify audit log integrity
  qoid audit verify --log /var/log/qoid/audit.jsonl

  # Show last 10 events
  qoid audit tail --log /var/log/qoid/audit.jsonl -n 10`,
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify audit log integrity",
	Long: `Verify the hash chain of an audit log file.

Each event in the log contains:
  - hash_prev: hash of the previous event
  - hash: SHA-256 over the event and hash_prev

The chain starts with hash_prev="sha256:genesis" for the first event.
A modified, deleted or inserted event breaks the chain.`,
	Args: cobra.NoArgs,
	RunE: runAuditVerify,
}

var auditTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent audit events",
	Long:  `Display the most recent audit events from the log file.`,
	Args:  cobra.NoArgs,
	RunE:  runAuditTail,
}

var (
	auditLogFile  string
	auditTailNum  int
	auditShowJSON bool
)

func init() {
	auditVerifyCmd.Flags().StringVar(&auditLogFile, "log", "", "Path to audit log file (required)")
	_ = auditVerifyCmd.MarkFlagRequired("log")

	auditTailCmd.Flags().StringVar(&auditLogFile, "log", "", "Path to audit log file (required)")
	_ = auditTailCmd.MarkFlagRequired("log")
	auditTailCmd.Flags().IntVarP(&auditTailNum, "num", "n", 10, "Number of events to show")
	auditTailCmd.Flags().BoolVar(&auditShowJSON, "json", false, "Output as JSON")

	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTailCmd)
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Verifying audit log: %s\n\n", auditLogFile)

	count, err := audit.VerifyChain(auditLogFile)
	if err != nil {
		fmt.Fprintf(out, "VERIFICATION FAILED\n")
		fmt.Fprintf(out, "  Valid events: %d\n", count)
		fmt.Fprintf(out, "  Error: %s\n", err)
		return fmt.Errorf("audit log verification failed: %w", err)
	}

	fmt.Fprintf(out, "VERIFICATION PASSED\n")
	fmt.Fprintf(out, "  Total events: %d\n", count)
	fmt.Fprintf(out, "  Hash chain: VALID\n")

	return nil
}

func runAuditTail(cmd *cobra.Command, args []string) error {
	events, err := audit.Tail(auditLogFile, auditTailNum)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if auditShowJSON {
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(events) == 0 {
		fmt.Fprintln(out, "Audit log is empty")
		return nil
	}

	for _, e := range events {
		printEvent(out, e)
	}
	return nil
}

func printEvent(w io.Writer, e *audit.Event) {
	resultIcon := "✓"
	if e.Result == audit.ResultFailure {
		resultIcon = "✗"
	}

	fmt.Fprintf(w, "[%s] %s %s\n", e.Timestamp, resultIcon, e.EventType)
	fmt.Fprintf(w, "    Actor:  %s %s@%s\n", e.Actor.Type, e.Actor.ID, e.Actor.Host)

	if e.Object.Type != "" {
		fmt.Fprintf(w, "    Object: %s", e.Object.Type)
		if e.Object.Name != "" {
			fmt.Fprintf(w, " name=%s", e.Object.Name)
		}
		if e.Object.Path != "" {
			fmt.Fprintf(w, " path=%s", e.Object.Path)
		}
		fmt.Fprintln(w)
	}

	c := e.Context
	if c.Table != "" || c.Format != "" || c.Entries != 0 || c.Reason != "" {
		fmt.Fprint(w, "    Context:")
		if c.Table != "" {
			fmt.Fprintf(w, " table=%s", c.Table)
		}
		if c.Format != "" {
			fmt.Fprintf(w, " format=%s", c.Format)
		}
		if c.Entries != 0 {
			fmt.Fprintf(w, " entries=%d", c.Entries)
		}
		if c.Reason != "" {
			fmt.Fprintf(w, " reason=%s", c.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
