package dto

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MediaTypeCBOR is the media type of CBOR responses.
const MediaTypeCBOR = "application/cbor"

// MarshalCBOR encodes v with canonical CBOR so identical tables always
// produce identical bytes. Struct fields use their json names.
func MarshalCBOR(v any) ([]byte, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	return em.Marshal(v)
}
