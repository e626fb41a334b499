// Package oid provides a fixed-size, comparable OBJECT IDENTIFIER value.
//
// An ObjectIdentifier stores every arc as a minimal base-128 subidentifier
// (the X.690 RELATIVE-OID form, without packing the first two arcs) in an
// inline buffer. Values compare with == and copy without allocation, and any
// dotted sequence of 32-bit arcs has exactly one encoding.
//
// Conversion to and from the DER OBJECT IDENTIFIER form used in certificates
// goes through golang.org/x/crypto/cryptobyte and applies the X.660 root arc
// rules at that boundary only.
package oid

import (
	"encoding/asn1"
	"math"
	"strconv"
	"strings"
)

// MaxSize is the maximum number of encoded octets an ObjectIdentifier can hold.
const MaxSize = 39

// MaxArc is the largest value a single arc may take.
const MaxArc Arc = math.MaxUint32

// Arc is one integer component of an OID.
type Arc = uint32

// ObjectIdentifier is an OID held as its encoded subidentifiers.
// The zero value is the empty OID and is never produced by Parse.
type ObjectIdentifier struct {
	bytes  [MaxSize]byte
	length uint8
}

// Parse parses a dotted decimal OID such as "2.5.4.3".
func Parse(s string) (ObjectIdentifier, error) {
	if s == "" {
		return ObjectIdentifier{}, &ParseError{Input: s, Err: ErrEmpty}
	}

	var (
		o   ObjectIdentifier
		pos int
	)
	for i, part := range strings.Split(s, ".") {
		if part == "" {
			return ObjectIdentifier{}, &ParseError{Input: s, Pos: pos, Arc: i, Err: ErrEmptyArc}
		}
		for j := 0; j < len(part); j++ {
			if part[j] < '0' || part[j] > '9' {
				return ObjectIdentifier{}, &ParseError{Input: s, Pos: pos + j, Arc: i, Err: ErrArcInvalid}
			}
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return ObjectIdentifier{}, &ParseError{Input: s, Pos: pos, Arc: i, Err: ErrArcTooBig}
		}
		if !o.push(Arc(v)) {
			return ObjectIdentifier{}, &ParseError{Input: s, Pos: pos, Arc: i, Err: ErrTooLong}
		}
		pos += len(part) + 1
	}
	return o, nil
}

// MustParse is like Parse but panics on malformed input.
// It is intended for package-level tables built from trusted registry data.
func MustParse(s string) ObjectIdentifier {
	o, err := Parse(s)
	if err != nil {
		panic("oid: " + err.Error())
	}
	return o
}

// FromArcs builds an ObjectIdentifier from its arcs.
func FromArcs(arcs ...Arc) (ObjectIdentifier, error) {
	if len(arcs) == 0 {
		return ObjectIdentifier{}, &ParseError{Err: ErrEmpty}
	}
	var o ObjectIdentifier
	for i, a := range arcs {
		if !o.push(a) {
			return ObjectIdentifier{}, &ParseError{Arc: i, Err: ErrTooLong}
		}
	}
	return o, nil
}

// FromASN1 converts an encoding/asn1 OID, as found in parsed certificates.
func FromASN1(in asn1.ObjectIdentifier) (ObjectIdentifier, error) {
	arcs := make([]Arc, len(in))
	for i, v := range in {
		if v < 0 || uint64(v) > uint64(MaxArc) {
			return ObjectIdentifier{}, &ParseError{Input: in.String(), Arc: i, Err: ErrArcTooBig}
		}
		arcs[i] = Arc(v)
	}
	o, err := FromArcs(arcs...)
	if pe, ok := err.(*ParseError); ok {
		pe.Input = in.String()
	}
	return o, err
}

// FromBytes builds an ObjectIdentifier from octets previously returned by Bytes.
// Non-minimal subidentifiers are rejected.
func FromBytes(b []byte) (ObjectIdentifier, error) {
	if len(b) == 0 {
		return ObjectIdentifier{}, &ParseError{Err: ErrEmpty}
	}
	if len(b) > MaxSize {
		return ObjectIdentifier{}, &ParseError{Err: ErrTooLong}
	}
	if _, ok := decodeArcs(b); !ok {
		return ObjectIdentifier{}, &ParseError{Err: ErrEncoding}
	}

	var o ObjectIdentifier
	o.length = uint8(copy(o.bytes[:], b))
	return o, nil
}

// push appends one arc. It reports false when the buffer would overflow.
func (o *ObjectIdentifier) push(a Arc) bool {
	n := 1
	for v := a >> 7; v > 0; v >>= 7 {
		n++
	}
	if int(o.length)+n > MaxSize {
		return false
	}
	for i := n - 1; i >= 0; i-- {
		b := byte(a>>(7*uint(i))) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		o.bytes[o.length] = b
		o.length++
	}
	return true
}

// decodeArcs splits encoded octets into arcs, rejecting non-minimal or
// truncated subidentifiers and arcs wider than 32 bits.
func decodeArcs(b []byte) ([]Arc, bool) {
	var (
		arcs  []Arc
		v     uint64
		start = true
	)
	for _, c := range b {
		if start && c == 0x80 {
			return nil, false
		}
		v = v<<7 | uint64(c&0x7f)
		if v > uint64(MaxArc) {
			return nil, false
		}
		start = c&0x80 == 0
		if start {
			arcs = append(arcs, Arc(v))
			v = 0
		}
	}
	return arcs, start
}

// Bytes returns a copy of the encoded octets.
func (o ObjectIdentifier) Bytes() []byte {
	return append([]byte(nil), o.bytes[:o.length]...)
}

// Buffer returns the fixed-size encoding buffer. Octets past Len are zero.
func (o ObjectIdentifier) Buffer() [MaxSize]byte {
	return o.bytes
}

// Len returns the number of encoded octets.
func (o ObjectIdentifier) Len() int {
	return int(o.length)
}

// IsZero reports whether o is the empty OID.
func (o ObjectIdentifier) IsZero() bool {
	return o.length == 0
}

// Equal reports whether o and other encode the same OID.
func (o ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return o == other
}

// Arcs returns the decoded arcs, or nil for the empty OID.
func (o ObjectIdentifier) Arcs() []Arc {
	arcs, _ := decodeArcs(o.bytes[:o.length])
	return arcs
}

// Arc returns the i-th arc. It reports false when i is out of range.
func (o ObjectIdentifier) Arc(i int) (Arc, bool) {
	arcs := o.Arcs()
	if i < 0 || i >= len(arcs) {
		return 0, false
	}
	return arcs[i], true
}

// AsASN1 converts o to an encoding/asn1 OID.
func (o ObjectIdentifier) AsASN1() asn1.ObjectIdentifier {
	arcs := o.Arcs()
	if arcs == nil {
		return nil
	}
	out := make(asn1.ObjectIdentifier, len(arcs))
	for i, a := range arcs {
		out[i] = int(a)
	}
	return out
}

// Parent returns the OID with the last arc removed.
// It reports false when o has a single arc or is empty.
func (o ObjectIdentifier) Parent() (ObjectIdentifier, bool) {
	arcs := o.Arcs()
	if len(arcs) <= 1 {
		return ObjectIdentifier{}, false
	}
	p, err := FromArcs(arcs[:len(arcs)-1]...)
	if err != nil {
		return ObjectIdentifier{}, false
	}
	return p, true
}

// HasPrefix reports whether prefix is o itself or one of its ancestors.
func (o ObjectIdentifier) HasPrefix(prefix ObjectIdentifier) bool {
	if prefix.length == 0 || prefix.length > o.length {
		return false
	}
	// a valid prefix always ends on a subidentifier boundary
	for i := 0; i < int(prefix.length); i++ {
		if o.bytes[i] != prefix.bytes[i] {
			return false
		}
	}
	return true
}

// String returns the dotted decimal form.
func (o ObjectIdentifier) String() string {
	var sb strings.Builder
	for i, a := range o.Arcs() {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(a), 10))
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (o ObjectIdentifier) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ObjectIdentifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
