// Command qoid-gen generates the pkg/oiddb tables from the YAML registry.
//
// It is normally run through go generate:
//
//	go generate ./pkg/oiddb
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/internal/gen"
	"github.com/remiblancher/qoid/pkg/audit"
)

var (
	genRegistryDir string
	genOutDir      string
	genPackage     string
	genCheck       bool
	genAuditLog    string
)

var rootCmd = &cobra.Command{
	Use:   "qoid-gen",
	Short: "Generate OID lookup tables from the registry",
	Long: `Generate one gen_<source>.go file per registry source plus gen_tables.go,
which assembles the DB, Attributes, ObjectClasses, Extensions and
Algorithms tables.

The registry is validated first: every OID must parse, every kind must be
known, and no OID or name may be registered twice.

Examples:
  # Regenerate the tables
  qoid-gen --registry ./registry --out ./pkg/oiddb

  # Fail if the checked-in tables are stale (CI)
  qoid-gen --registry ./registry --out ./pkg/oiddb --check`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if genAuditLog == "" {
			genAuditLog = os.Getenv("QOID_AUDIT_LOG")
		}
		if genAuditLog != "" {
			if err := audit.InitFile(genAuditLog); err != nil {
				return fmt.Errorf("failed to initialize audit log: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return audit.Close()
	},
	RunE: runGenerate,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&genRegistryDir, "registry", "registry", "Directory holding the registry YAML files")
	flags.StringVar(&genOutDir, "out", ".", "Output directory for generated Go files")
	flags.StringVar(&genPackage, "package", "oiddb", "Package name of the generated files")
	flags.BoolVar(&genCheck, "check", false, "Only report files that would change")
	rootCmd.PersistentFlags().StringVar(&genAuditLog, "audit-log", "",
		"Path to audit log file (or set QOID_AUDIT_LOG env var)")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qoid-gen: ")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = audit.Close()
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg, err := gen.LoadRegistry(genRegistryDir)
	if err != nil {
		if auditErr := audit.LogTablesGenerated(genRegistryDir, genOutDir, 0, 0, false, err.Error()); auditErr != nil {
			return auditErr
		}
		return err
	}

	files, err := gen.Render(reg, genPackage)
	if err != nil {
		return err
	}

	if genCheck {
		changed, err := gen.Diff(genOutDir, files)
		if err != nil {
			return err
		}
		if len(changed) > 0 {
			return fmt.Errorf("generated files are stale: %s", strings.Join(changed, ", "))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d files up to date\n", len(files))
		return nil
	}

	if err := gen.Write(genOutDir, files); err != nil {
		return err
	}
	log.Printf("wrote %d files (%d sources, %d entries) to %s", len(files), len(reg.Sources), reg.Len(), genOutDir)

	return audit.LogTablesGenerated(genRegistryDir, genOutDir, len(reg.Sources), reg.Len(), true, "")
}
