// Package oiddb is a read-only database of OID names.
//
// The tables in this package are generated from the registry files under
// registry/ (IANA LDAP descriptors, RFC 5280 and algorithm RFCs). Lookups are
// linear scans over immutable package-level data, so every Database is safe
// for concurrent use without locking.
//
// To regenerate the tables after editing the registry:
//
//	go generate ./pkg/oiddb
package oiddb

//go:generate go run ../../cmd/qoid-gen --registry ../../registry --out . --package oiddb
