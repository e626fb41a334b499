package oiddb

import (
	"errors"
	"testing"
)

func TestU_Tables_CommonName(t *testing.T) {
	if got := DB.ByOID(RFC4519CN.OID); got != &RFC4519CN {
		t.Errorf("DB.ByOID(cn) = %v", got)
	}
	if got := Attributes.ByOID(RFC4519CN.OID); got != &RFC4519CN {
		t.Errorf("Attributes.ByOID(cn) = %v", got)
	}
	if got := ObjectClasses.ByOID(RFC4519CN.OID); got != nil {
		t.Errorf("ObjectClasses.ByOID(cn) = %v, want nil", got)
	}

	if got := DB.ByName(RFC4519CN.Name); got != &RFC4519CN {
		t.Errorf("DB.ByName(cn) = %v", got)
	}
	if got := Attributes.ByName(RFC4519CN.Name); got != &RFC4519CN {
		t.Errorf("Attributes.ByName(cn) = %v", got)
	}
	if got := ObjectClasses.ByName(RFC4519CN.Name); got != nil {
		t.Errorf("ObjectClasses.ByName(cn) = %v, want nil", got)
	}
}

func TestU_Tables_RoundTrip(t *testing.T) {
	for _, name := range TableNames() {
		db, err := Table(name)
		if err != nil {
			t.Fatalf("Table(%q) error = %v", name, err)
		}
		t.Run(name, func(t *testing.T) {
			for _, e := range db.All() {
				if got := db.ByOID(e.OID); got == nil || got.Name != e.Name {
					t.Errorf("ByOID(%s) = %v, want %s", e.OID, got, e.Name)
				}
				if got := db.ByName(e.Name); got == nil || got.OID != e.OID {
					t.Errorf("ByName(%s) = %v, want %s", e.Name, got, e.OID)
				}
				resolved, err := db.Resolve(e.OID.String())
				if err != nil || resolved != e.Name {
					t.Errorf("Resolve(%s) = %q, %v; want %s", e.OID, resolved, err, e.Name)
				}
			}
		})
	}
}

func TestU_Tables_PartitionsAreSubsets(t *testing.T) {
	partitions := map[string]Kind{
		TableAttributes:    KindAttribute,
		TableObjectClasses: KindObjectClass,
		TableExtensions:    KindExtension,
		TableAlgorithms:    KindAlgorithm,
	}

	total := 0
	for name, kind := range partitions {
		db, err := Table(name)
		if err != nil {
			t.Fatalf("Table(%q) error = %v", name, err)
		}
		if db.Len() == 0 {
			t.Errorf("table %s is empty", name)
		}
		total += db.Len()

		for _, e := range db.All() {
			if e.Kind != kind {
				t.Errorf("%s: entry %s has kind %s", name, e.Name, e.Kind)
			}
			if DB.ByOID(e.OID) != e {
				t.Errorf("%s: entry %s not found in DB by OID", name, e.Name)
			}
			if DB.ByName(e.Name) != e {
				t.Errorf("%s: entry %s not found in DB by name", name, e.Name)
			}
		}
	}

	if total >= DB.Len() {
		t.Errorf("partitions cover %d of %d entries, expected KindOther entries outside them", total, DB.Len())
	}
}

func TestU_Tables_NoDuplicates(t *testing.T) {
	oids := make(map[string]string)
	names := make(map[string]bool)
	for _, e := range DB.All() {
		if prev, ok := oids[e.OID.String()]; ok {
			t.Errorf("OID %s registered as %s and %s", e.OID, prev, e.Name)
		}
		oids[e.OID.String()] = e.Name
		if names[e.Name] {
			t.Errorf("name %s registered twice", e.Name)
		}
		names[e.Name] = true
	}
}

func TestU_Tables_WellKnown(t *testing.T) {
	tests := []struct {
		table string
		oid   string
		name  string
	}{
		{TableAll, "2.5.4.3", "cn"},
		{TableAll, "1.3.6.1.5.5.7.3.1", "id-kp-serverAuth"},
		{TableAttributes, "0.9.2342.19200300.100.1.25", "dc"},
		{TableAttributes, "1.2.840.113549.1.9.1", "emailAddress"},
		{TableObjectClasses, "2.16.840.1.113730.3.2.2", "inetOrgPerson"},
		{TableExtensions, "2.5.29.19", "id-ce-basicConstraints"},
		{TableAlgorithms, "2.16.840.1.101.3.4.3.18", "id-ml-dsa-65"},
		{TableAlgorithms, "1.3.101.112", "id-Ed25519"},
	}

	for _, tt := range tests {
		t.Run(tt.table+"/"+tt.name, func(t *testing.T) {
			db, err := Table(tt.table)
			if err != nil {
				t.Fatalf("Table() error = %v", err)
			}
			got, err := db.Resolve(tt.oid)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.name {
				t.Errorf("Resolve(%s) = %q, want %q", tt.oid, got, tt.name)
			}
		})
	}
}

func TestU_Table_Unknown(t *testing.T) {
	_, err := Table("nope")
	if !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Table(nope) error = %v, want ErrUnknownTable", err)
	}

	db, err := Table("")
	if err != nil || db.Len() != DB.Len() {
		t.Errorf("Table(\"\") should select DB")
	}
}

func TestU_TableDescription(t *testing.T) {
	for _, name := range TableNames() {
		if TableDescription(name) == "" {
			t.Errorf("TableDescription(%q) is empty", name)
		}
	}
	if TableDescription("nope") != "" {
		t.Error("unknown table should have no description")
	}
}

func TestU_Kind(t *testing.T) {
	for _, k := range []Kind{KindOther, KindAttribute, KindObjectClass, KindExtension, KindAlgorithm} {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("matching-rule"); err == nil {
		t.Error("ParseKind should reject unknown kinds")
	}
	if Kind(42).String() != "kind(42)" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}

	var k Kind
	if err := k.UnmarshalText([]byte("object-class")); err != nil || k != KindObjectClass {
		t.Errorf("UnmarshalText() = %v, %v", k, err)
	}
}
