package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/internal/api/server"
)

// Serve command flags
var (
	serveConfig  string
	servePort    int
	serveHost    string
	serveTable   string
	serveTLSCert string
	serveTLSKey  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP lookup API",
	Long: `Start the HTTP lookup API.

Settings are taken from flags, then environment variables, then the YAML
config file, then defaults.

Environment variables:
  QOID_CONFIG     YAML config file
  QOID_HOST       Host to bind to
  QOID_PORT       Port to listen on
  QOID_TABLE      Table served by /api/v1/{oids,names,resolve}
  QOID_TLS_CERT   TLS certificate file
  QOID_TLS_KEY    TLS private key file

Examples:
  # Serve every table on port 8080
  qoid serve

  # Serve the algorithm table by default, with TLS
  qoid serve --table alg --port 8443 --tls-cert server.crt --tls-key server.key

  # Use a config file
  qoid serve --config /etc/qoid/server.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVarP(&serveConfig, "config", "c", "", "YAML config file")
	flags.IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	flags.StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	flags.StringVarP(&serveTable, "table", "t", "", "Default table (default: all)")
	flags.StringVar(&serveTLSCert, "tls-cert", "", "TLS certificate file")
	flags.StringVar(&serveTLSKey, "tls-key", "", "TLS private key file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	srv := server.New(cfg, version)
	srv.SetOutput(cmd.OutOrStdout())
	return srv.Start(cmd.Context())
}

// loadServeConfig layers flags over environment over the config file.
// portSet reports whether --port was given; port 0 then asks for a free port.
func loadServeConfig(portSet bool) (*server.Config, error) {
	portSet, err := applyServeEnvVars(portSet)
	if err != nil {
		return nil, err
	}

	cfg := server.DefaultConfig()
	if serveConfig != "" {
		loaded, err := server.LoadConfig(serveConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if portSet {
		cfg.Port = servePort
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if serveTable != "" {
		cfg.Table = serveTable
	}
	if serveTLSCert != "" {
		cfg.TLSCert = serveTLSCert
	}
	if serveTLSKey != "" {
		cfg.TLSKey = serveTLSKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

func applyServeEnvVars(portSet bool) (bool, error) {
	if serveConfig == "" {
		serveConfig = os.Getenv("QOID_CONFIG")
	}
	if !portSet {
		if v := os.Getenv("QOID_PORT"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return false, fmt.Errorf("invalid QOID_PORT %q: %w", v, err)
			}
			servePort, portSet = p, true
		}
	}
	if serveHost == "" {
		serveHost = os.Getenv("QOID_HOST")
	}
	if serveTable == "" {
		serveTable = os.Getenv("QOID_TABLE")
	}
	if serveTLSCert == "" {
		serveTLSCert = os.Getenv("QOID_TLS_CERT")
	}
	if serveTLSKey == "" {
		serveTLSKey = os.Getenv("QOID_TLS_KEY")
	}
	return portSet, nil
}
