package oiddb

import (
	"errors"
	"iter"

	"github.com/remiblancher/qoid/pkg/oid"
)

var (
	// ErrNotFound is returned by callers that treat a missing entry as an error.
	// Lookups themselves report absence with a nil result.
	ErrNotFound = errors.New("oid not found")

	// ErrUnknownTable is returned by Table for an unregistered table name.
	ErrUnknownTable = errors.New("unknown table")
)

// NamedOID pairs an OID with its registered name.
type NamedOID struct {
	OID  oid.ObjectIdentifier
	Name string
	Kind Kind
}

// String returns the registered name.
func (n *NamedOID) String() string {
	return n.Name
}

// Database is a query view over a static table of named OIDs.
// Entries are scanned in table order and the first match wins.
type Database struct {
	entries []*NamedOID
}

// New returns a Database over entries. The slice is not copied and must not
// be modified afterwards.
func New(entries ...*NamedOID) Database {
	return Database{entries: entries}
}

// Resolve returns the name registered for the dotted OID s, or s itself when
// no entry matches. It only fails when s is not a valid OID.
func (db Database) Resolve(s string) (string, error) {
	o, err := oid.Parse(s)
	if err != nil {
		return "", err
	}
	if n := db.ByOID(o); n != nil {
		return n.Name, nil
	}
	return s, nil
}

// ResolveOID returns the name registered for o, or its dotted form.
func (db Database) ResolveOID(o oid.ObjectIdentifier) string {
	if n := db.ByOID(o); n != nil {
		return n.Name
	}
	return o.String()
}

// ByOID returns the first entry whose OID equals o, or nil.
func (db Database) ByOID(o oid.ObjectIdentifier) *NamedOID {
	rhs := o.Buffer()
	for i := 0; i < len(db.entries); i++ {
		lhs := db.entries[i].OID.Buffer()
		if db.entries[i].OID.Len() == o.Len() && bytesEqual(lhs[:], rhs[:]) {
			return db.entries[i]
		}
	}
	return nil
}

// ByName returns the first entry whose name equals name exactly, or nil.
// Matching is case-sensitive.
func (db Database) ByName(name string) *NamedOID {
	for i := 0; i < len(db.entries); i++ {
		if bytesEqual(db.entries[i].Name, name) {
			return db.entries[i]
		}
	}
	return nil
}

// Len returns the number of entries in the table.
func (db Database) Len() int {
	return len(db.entries)
}

// All iterates over the entries in table order.
func (db Database) All() iter.Seq2[int, *NamedOID] {
	return func(yield func(int, *NamedOID) bool) {
		for i, n := range db.entries {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Entries returns a copy of the table. The entries themselves are shared.
func (db Database) Entries() []*NamedOID {
	return append([]*NamedOID(nil), db.entries...)
}

// bytesEqual reports whether lhs and rhs have the same length and content.
// It does not allocate.
func bytesEqual[T ~string | ~[]byte](lhs, rhs T) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := 0; i < len(lhs); i++ {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	return true
}
