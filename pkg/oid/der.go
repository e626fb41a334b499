package oid

import (
	"encoding/asn1"
	"math"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// maxDERArc is the widest arc cryptobyte reads back.
const maxDERArc = math.MaxInt32

// DER returns the DER encoding (tag, length and content) of o.
// X.660 requires at least two arcs, a root arc of 0, 1 or 2, and a second
// arc below 40 under roots 0 and 1; OIDs outside those rules have no DER form.
func (o ObjectIdentifier) DER() ([]byte, error) {
	arcs := o.Arcs()
	if err := checkDER(arcs); err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Input = o.String()
		}
		return nil, err
	}

	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(o.AsASN1())
	der, err := b.Bytes()
	if err != nil {
		return nil, &ParseError{Input: o.String(), Err: ErrEncoding}
	}
	return der, nil
}

// FromDER parses a DER OBJECT IDENTIFIER (tag, length and content).
func FromDER(der []byte) (ObjectIdentifier, error) {
	var out asn1.ObjectIdentifier
	in := cryptobyte.String(der)
	if !in.ReadASN1ObjectIdentifier(&out) || !in.Empty() {
		return ObjectIdentifier{}, &ParseError{Err: ErrEncoding}
	}
	return FromASN1(out)
}

// FromDERContent parses the content octets of a DER OBJECT IDENTIFIER, as
// carried without a header by some protocols.
func FromDERContent(content []byte) (ObjectIdentifier, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(c *cryptobyte.Builder) {
		c.AddBytes(content)
	})
	der, err := b.Bytes()
	if err != nil {
		return ObjectIdentifier{}, &ParseError{Err: ErrEncoding}
	}
	return FromDER(der)
}

func checkDER(arcs []Arc) error {
	if len(arcs) < 2 {
		return &ParseError{Arc: len(arcs), Err: ErrNotEnoughArcs}
	}
	for i, a := range arcs {
		if a > maxDERArc {
			return &ParseError{Arc: i, Err: ErrArcTooBig}
		}
	}
	switch {
	case arcs[0] > 2:
		return &ParseError{Err: ErrFirstArc}
	case arcs[0] < 2 && arcs[1] > 39:
		return &ParseError{Arc: 1, Err: ErrSecondArc}
	case arcs[0] == 2 && arcs[1] > maxDERArc-80:
		// the first subidentifier packs 40*arc0 + arc1
		return &ParseError{Arc: 1, Err: ErrArcTooBig}
	}
	return nil
}
