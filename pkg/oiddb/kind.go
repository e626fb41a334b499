package oiddb

import "fmt"

// Kind classifies a registry entry.
type Kind uint8

const (
	KindOther       Kind = iota // arcs, key purposes, policy qualifiers
	KindAttribute               // LDAP/X.500 attribute types
	KindObjectClass             // LDAP/X.500 object classes
	KindExtension               // X.509 certificate and CRL extensions
	KindAlgorithm               // algorithms, keys and curves
)

var kindNames = [...]string{
	KindOther:       "other",
	KindAttribute:   "attribute",
	KindObjectClass: "object-class",
	KindExtension:   "extension",
	KindAlgorithm:   "algorithm",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind returns the Kind for its registry name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
