package main

import (
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remiblancher/qoid/pkg/oiddb"
	"github.com/remiblancher/qoid/pkg/x509util"
)

var (
	inspectTable  string
	inspectFormat string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Display a certificate with registered OID names",
	Long: `Display X.509 certificates with attribute types, extensions and
algorithms shown by their registered names. OIDs without a name stay
dotted.

FILE holds one or more PEM certificates, or a single DER certificate.

Examples:
  qoid inspect server.crt
  qoid inspect chain.pem --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectTable, "table", "t", "all", "Table used for names")
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", formatText, "Output format: text, json, yaml")
}

// certInfo is the structured form of a certificate.
type certInfo struct {
	Serial             string               `json:"serial" yaml:"serial"`
	Subject            []x509util.Attribute `json:"subject" yaml:"subject"`
	Issuer             []x509util.Attribute `json:"issuer" yaml:"issuer"`
	NotBefore          string               `json:"not_before" yaml:"not_before"`
	NotAfter           string               `json:"not_after" yaml:"not_after"`
	SignatureAlgorithm string               `json:"signature_algorithm" yaml:"signature_algorithm"`
	PublicKeyAlgorithm string               `json:"public_key_algorithm" yaml:"public_key_algorithm"`
	ExtKeyUsage        []string             `json:"ext_key_usage,omitempty" yaml:"ext_key_usage,omitempty"`
	Extensions         []x509util.Extension `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectFormat == formatCBOR {
		return fmt.Errorf("unsupported format: %s", inspectFormat)
	}

	_, db, err := openTable(inspectTable)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	certs, err := parseCertificates(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectFormat != formatText {
		infos := make([]certInfo, 0, len(certs))
		for _, cert := range certs {
			info, err := describeCertificate(db, cert)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}
		return encode(out, inspectFormat, infos)
	}

	for i, cert := range certs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := showCertificate(out, db, cert); err != nil {
			return err
		}
	}
	return nil
}

// parseCertificates reads every CERTIFICATE block, or DER when data is not PEM.
func parseCertificates(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("unsupported PEM type: %s", block.Type)
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse certificate: %w", err)
		}
		certs = append(certs, cert)
	}
	if len(certs) > 0 {
		return certs, nil
	}

	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse file: not a PEM or DER certificate")
	}
	return []*x509.Certificate{cert}, nil
}

func describeCertificate(db oiddb.Database, cert *x509.Certificate) (certInfo, error) {
	eku, err := x509util.ExtKeyUsageNames(db, cert.Extensions)
	if err != nil {
		return certInfo{}, err
	}
	return certInfo{
		Serial:             hex.EncodeToString(cert.SerialNumber.Bytes()),
		Subject:            x509util.NameAttributes(db, cert.Subject),
		Issuer:             x509util.NameAttributes(db, cert.Issuer),
		NotBefore:          cert.NotBefore.UTC().Format("2006-01-02 15:04:05 UTC"),
		NotAfter:           cert.NotAfter.UTC().Format("2006-01-02 15:04:05 UTC"),
		SignatureAlgorithm: x509util.SignatureAlgorithmName(db, cert),
		PublicKeyAlgorithm: x509util.PublicKeyAlgorithmName(db, cert),
		ExtKeyUsage:        eku,
		Extensions:         x509util.DescribeExtensions(db, cert.Extensions),
	}, nil
}

func showCertificate(w io.Writer, db oiddb.Database, cert *x509.Certificate) error {
	info, err := describeCertificate(db, cert)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Certificate:")
	fmt.Fprintf(w, "  Serial Number:  %s\n", info.Serial)
	fmt.Fprintf(w, "  Subject:        %s\n", x509util.DescribeName(db, cert.Subject))
	fmt.Fprintf(w, "  Issuer:         %s\n", x509util.DescribeName(db, cert.Issuer))
	fmt.Fprintf(w, "  Not Before:     %s\n", info.NotBefore)
	fmt.Fprintf(w, "  Not After:      %s\n", info.NotAfter)
	fmt.Fprintf(w, "  Signature Alg:  %s\n", info.SignatureAlgorithm)
	fmt.Fprintf(w, "  Public Key Alg: %s\n", info.PublicKeyAlgorithm)

	if len(info.ExtKeyUsage) > 0 {
		fmt.Fprintf(w, "  Ext Key Usage:  %s\n", strings.Join(info.ExtKeyUsage, ", "))
	}

	if len(info.Extensions) > 0 {
		fmt.Fprintln(w, "  Extensions:")
		for _, ext := range info.Extensions {
			critical := ""
			if ext.Critical {
				critical = " (critical)"
			}
			fmt.Fprintf(w, "    %s%s\n", ext.Name, critical)
		}
	}
	return nil
}
