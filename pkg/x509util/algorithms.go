package x509util

import (
	"crypto/x509"
	"encoding/asn1"
	"errors"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/remiblancher/qoid/pkg/oiddb"
)

// ErrMalformed is returned when certificate bytes cannot be walked.
var ErrMalformed = errors.New("malformed certificate structure")

// oidECPublicKey is id-ecPublicKey; its parameters name the curve.
var oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

// readAlgorithmIdentifier reads an AlgorithmIdentifier SEQUENCE and returns
// its OID and, when the parameters are an OID (named curve), that too.
func readAlgorithmIdentifier(s *cryptobyte.String) (alg, param asn1.ObjectIdentifier, ok bool) {
	var ai cryptobyte.String
	if !s.ReadASN1(&ai, cbasn1.SEQUENCE) || !ai.ReadASN1ObjectIdentifier(&alg) {
		return nil, nil, false
	}
	if ai.PeekASN1Tag(cbasn1.OBJECT_IDENTIFIER) {
		if !ai.ReadASN1ObjectIdentifier(&param) {
			return nil, nil, false
		}
	}
	return alg, param, true
}

// SignatureAlgorithmOID extracts the outer signatureAlgorithm OID of a DER
// certificate. It also works for algorithms crypto/x509 does not know.
func SignatureAlgorithmOID(rawCert []byte) (asn1.ObjectIdentifier, error) {
	input := cryptobyte.String(rawCert)
	var cert cryptobyte.String
	if !input.ReadASN1(&cert, cbasn1.SEQUENCE) || !cert.SkipASN1(cbasn1.SEQUENCE) {
		return nil, ErrMalformed
	}
	alg, _, ok := readAlgorithmIdentifier(&cert)
	if !ok {
		return nil, ErrMalformed
	}
	return alg, nil
}

// PublicKeyAlgorithmOID extracts the algorithm OID of a DER
// SubjectPublicKeyInfo, plus the named curve OID for EC keys.
func PublicKeyAlgorithmOID(rawSPKI []byte) (alg, curve asn1.ObjectIdentifier, err error) {
	input := cryptobyte.String(rawSPKI)
	var spki cryptobyte.String
	if !input.ReadASN1(&spki, cbasn1.SEQUENCE) {
		return nil, nil, ErrMalformed
	}
	alg, param, ok := readAlgorithmIdentifier(&spki)
	if !ok {
		return nil, nil, ErrMalformed
	}
	if OIDEqual(alg, oidECPublicKey) {
		curve = param
	}
	return alg, curve, nil
}

// SignatureAlgorithmName names the signature algorithm of cert from the
// database, falling back to crypto/x509's name and then to the dotted OID.
func SignatureAlgorithmName(db oiddb.Database, cert *x509.Certificate) string {
	id, err := SignatureAlgorithmOID(cert.Raw)
	if err != nil {
		return cert.SignatureAlgorithm.String()
	}
	name := Name(db, id)
	if name == id.String() && cert.SignatureAlgorithm != x509.UnknownSignatureAlgorithm {
		return cert.SignatureAlgorithm.String()
	}
	return name
}

// PublicKeyAlgorithmName names the subject public key algorithm of cert,
// with the curve for EC keys, e.g. "id-ecPublicKey (secp256r1)".
func PublicKeyAlgorithmName(db oiddb.Database, cert *x509.Certificate) string {
	alg, curve, err := PublicKeyAlgorithmOID(cert.RawSubjectPublicKeyInfo)
	if err != nil {
		return cert.PublicKeyAlgorithm.String()
	}
	name := Name(db, alg)
	if curve != nil {
		name += " (" + Name(db, curve) + ")"
	}
	return name
}
