// Command qoid looks up object identifiers and their registered names.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/pkg/audit"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var auditLogPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = audit.Close()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qoid",
	Short: "qoid - OID to name lookups",
	Long: `qoid maps object identifiers (OIDs) to the names registered for them in
LDAP and X.509 standards, and back.

Tables:
  all   every registry entry
  attr  attribute types (cn, dc, emailAddress, ...)
  obj   object classes (person, inetOrgPerson, ...)
  ext   certificate extensions
  alg   signature and key algorithms, including ML-DSA and ML-KEM

Examples:
  # Resolve OIDs to names
  qoid resolve 2.5.4.3 1.3.101.112

  # Look up an entry by name
  qoid lookup --name id-ce-basicConstraints --format json

  # Export a table
  qoid list --table alg --format cbor --out alg.cbor

  # Show a certificate with friendly names
  qoid inspect server.crt

  # Serve the lookup API
  qoid serve --port 8080`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check for audit log path from environment if not set via flag
		if auditLogPath == "" {
			auditLogPath = os.Getenv("QOID_AUDIT_LOG")
		}

		if auditLogPath != "" {
			if err := audit.InitFile(auditLogPath); err != nil {
				return fmt.Errorf("failed to initialize audit log: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return audit.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&auditLogPath, "audit-log", "",
		"Path to audit log file (or set QOID_AUDIT_LOG env var)")

	// Lookups
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(auditCmd)
}
