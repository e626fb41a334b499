package x509util

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/remiblancher/qoid/pkg/oiddb"
)

// OIDExtExtKeyUsage is the extended key usage extension.
var OIDExtExtKeyUsage = asn1.ObjectIdentifier{2, 5, 29, 37}

// Extension describes one certificate extension.
type Extension struct {
	OID      string `json:"oid" yaml:"oid"`
	Name     string `json:"name" yaml:"name"`
	Critical bool   `json:"critical,omitempty" yaml:"critical,omitempty"`
}

// DescribeExtensions names every extension in order.
func DescribeExtensions(db oiddb.Database, exts []pkix.Extension) []Extension {
	out := make([]Extension, len(exts))
	for i, ext := range exts {
		out[i] = Extension{
			OID:      ext.Id.String(),
			Name:     Name(db, ext.Id),
			Critical: ext.Critical,
		}
	}
	return out
}

// ExtensionNames returns the name of every extension in order.
func ExtensionNames(db oiddb.Database, exts []pkix.Extension) []string {
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = Name(db, ext.Id)
	}
	return names
}

// ExtKeyUsageNames names the key purposes of the extended key usage
// extension, or returns nil when exts has none.
func ExtKeyUsageNames(db oiddb.Database, exts []pkix.Extension) ([]string, error) {
	for _, ext := range exts {
		if !OIDEqual(ext.Id, OIDExtExtKeyUsage) {
			continue
		}

		input := cryptobyte.String(ext.Value)
		var seq cryptobyte.String
		if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
			return nil, fmt.Errorf("malformed extended key usage extension")
		}

		var names []string
		for !seq.Empty() {
			var purpose asn1.ObjectIdentifier
			if !seq.ReadASN1ObjectIdentifier(&purpose) {
				return nil, fmt.Errorf("malformed key purpose in extended key usage")
			}
			names = append(names, Name(db, purpose))
		}
		return names, nil
	}
	return nil, nil
}
