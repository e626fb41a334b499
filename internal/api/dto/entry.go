package dto

import "github.com/remiblancher/qoid/pkg/oiddb"

// Entry is a registered OID and its name.
type Entry struct {
	OID  string `json:"oid" yaml:"oid"`
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

// NewEntry converts a table entry.
func NewEntry(n *oiddb.NamedOID) Entry {
	return Entry{
		OID:  n.OID.String(),
		Name: n.Name,
		Kind: n.Kind.String(),
	}
}

// TableInfo summarizes a named table.
type TableInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Entries     int    `json:"entries" yaml:"entries"`
}

// TableListResponse lists the available tables.
type TableListResponse struct {
	Default string      `json:"default" yaml:"default"`
	Tables  []TableInfo `json:"tables" yaml:"tables"`
}

// TableResponse is a full table dump.
type TableResponse struct {
	TableInfo `yaml:",inline"`
	Items     []Entry `json:"items" yaml:"items"`
}

// ResolveResponse is the result of resolving an OID to a display name.
// Found is false when Name echoes the input.
type ResolveResponse struct {
	Table string `json:"table" yaml:"table"`
	Input string `json:"input" yaml:"input"`
	Name  string `json:"name" yaml:"name"`
	Found bool   `json:"found" yaml:"found"`
}
