package oiddb

import "fmt"

// Table names accepted by Table.
const (
	TableAll           = "all"
	TableAttributes    = "attr"
	TableObjectClasses = "obj"
	TableExtensions    = "ext"
	TableAlgorithms    = "alg"
)

// TableNames lists the named tables in display order.
func TableNames() []string {
	return []string{TableAll, TableAttributes, TableObjectClasses, TableExtensions, TableAlgorithms}
}

// Table returns the named table. An empty name selects DB.
func Table(name string) (Database, error) {
	switch name {
	case TableAll, "":
		return DB, nil
	case TableAttributes:
		return Attributes, nil
	case TableObjectClasses:
		return ObjectClasses, nil
	case TableExtensions:
		return Extensions, nil
	case TableAlgorithms:
		return Algorithms, nil
	default:
		return Database{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
}

// TableDescription returns a one-line description of a named table.
func TableDescription(name string) string {
	switch name {
	case TableAll:
		return "every registry entry"
	case TableAttributes:
		return "attribute types"
	case TableObjectClasses:
		return "object classes"
	case TableExtensions:
		return "certificate and CRL extensions"
	case TableAlgorithms:
		return "algorithms, keys and curves"
	default:
		return ""
	}
}
