package oid

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every *ParseError returned by this package.
var ErrInvalid = errors.New("invalid OID")

// Parse error kinds.
var (
	ErrEmpty      = errors.New("empty OID")
	ErrEmptyArc   = errors.New("empty arc")
	ErrArcInvalid = errors.New("arc is not a decimal number")
	ErrArcTooBig  = errors.New("arc exceeds maximum value")
	ErrTooLong    = errors.New("OID encoding too long")
	ErrEncoding   = errors.New("malformed OID encoding")
)

// DER conversion error kinds (X.660 root arc rules).
var (
	ErrNotEnoughArcs = errors.New("OID needs at least two arcs")
	ErrFirstArc      = errors.New("first arc must be 0, 1 or 2")
	ErrSecondArc     = errors.New("second arc must be at most 39 under arcs 0 and 1")
)

// ParseError describes a malformed OID.
type ParseError struct {
	// Input is the text (or dotted form) being parsed, when known.
	Input string
	// Pos is the byte offset in Input where the problem was found.
	Pos int
	// Arc is the zero-based index of the offending arc.
	Arc int
	// Err is one of the Err* kinds above.
	Err error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid OID: %v", e.Err)
	}
	return fmt.Sprintf("invalid OID %q: %v (arc %d)", e.Input, e.Err, e.Arc)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrInvalid.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalid
}
