package x509util

import (
	"crypto/x509/pkix"
	"fmt"
	"strings"

	"github.com/remiblancher/qoid/pkg/oiddb"
)

// Attribute is one attribute of a distinguished name.
type Attribute struct {
	OID   string `json:"oid" yaml:"oid"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NameAttributes returns the attributes of a distinguished name in encoded
// order. Names parsed from a certificate keep every attribute, including
// ones encoding/asn1 has no field for.
func NameAttributes(db oiddb.Database, name pkix.Name) []Attribute {
	atvs := name.Names
	if len(atvs) == 0 {
		for _, rdn := range name.ToRDNSequence() {
			atvs = append(atvs, rdn...)
		}
	}

	attrs := make([]Attribute, 0, len(atvs))
	for _, atv := range atvs {
		attrs = append(attrs, Attribute{
			OID:   atv.Type.String(),
			Name:  Name(db, atv.Type),
			Value: fmt.Sprint(atv.Value),
		})
	}
	return attrs
}

// DescribeName renders a distinguished name as "name=value" pairs, e.g.
// "c=FR, o=Example, cn=www.example.com". Unknown attribute types stay in
// dotted form.
func DescribeName(db oiddb.Database, name pkix.Name) string {
	attrs := NameAttributes(db, name)
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Name + "=" + a.Value
	}
	return strings.Join(parts, ", ")
}
