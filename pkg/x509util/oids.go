// Package x509util names the OIDs found in X.509 certificates using an
// oiddb.Database.
package x509util

import (
	"encoding/asn1"

	"github.com/remiblancher/qoid/pkg/oid"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

// OIDEqual compares two encoding/asn1 OIDs. nil and empty are equal.
func OIDEqual(a, b asn1.ObjectIdentifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Name returns the database name of an encoding/asn1 OID, or its dotted form
// when it is unknown or cannot be represented.
func Name(db oiddb.Database, id asn1.ObjectIdentifier) string {
	o, err := oid.FromASN1(id)
	if err != nil {
		return id.String()
	}
	return db.ResolveOID(o)
}
