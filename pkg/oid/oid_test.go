package oid

import (
	"bytes"
	"encoding/asn1"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestU_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{name: "common name", input: "2.5.4.3", want: []byte{0x02, 0x05, 0x04, 0x03}},
		{name: "rsadsi", input: "1.2.840.113549", want: []byte{0x01, 0x02, 0x86, 0x48, 0x86, 0xf7, 0x0d}},
		{name: "single arc", input: "5", want: []byte{0x05}},
		{name: "large second arc", input: "2.999", want: []byte{0x02, 0x87, 0x67}},
		{name: "root arc outside X.660", input: "9.9.9.9", want: []byte{0x09, 0x09, 0x09, 0x09}},
		{name: "max arc", input: "1.3.4294967295", want: []byte{0x01, 0x03, 0x8f, 0xff, 0xff, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !bytes.Equal(got.Bytes(), tt.want) {
				t.Errorf("Parse(%q).Bytes() = %x, want %x", tt.input, got.Bytes(), tt.want)
			}
			if got.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", got.Len(), len(tt.want))
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestU_Parse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrEmpty},
		{name: "double dot", input: "1..2", want: ErrEmptyArc},
		{name: "trailing dot", input: "1.2.", want: ErrEmptyArc},
		{name: "leading dot", input: ".1.2", want: ErrEmptyArc},
		{name: "lone dot", input: ".", want: ErrEmptyArc},
		{name: "letters", input: "abc", want: ErrArcInvalid},
		{name: "text", input: "not-an-oid", want: ErrArcInvalid},
		{name: "sign", input: "1.-2", want: ErrArcInvalid},
		{name: "plus", input: "1.+2", want: ErrArcInvalid},
		{name: "space", input: "1.2 ", want: ErrArcInvalid},
		{name: "arc overflow", input: "1.2.4294967296", want: ErrArcTooBig},
		{name: "uint64 overflow", input: "1.2.99999999999999999999", want: ErrArcTooBig},
		{name: "too long", input: "1" + strings.Repeat(".1", MaxSize), want: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error should match ErrInvalid", tt.input)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error should be *ParseError", tt.input)
			}
			if pe.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
			}
		})
	}
}

func TestU_Parse_ErrorPosition(t *testing.T) {
	_, err := Parse("1.2.x3")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Pos != 4 || pe.Arc != 2 {
		t.Errorf("Pos = %d, Arc = %d; want 4, 2", pe.Pos, pe.Arc)
	}
}

func TestU_Parse_MaxSize(t *testing.T) {
	s := "1" + strings.Repeat(".1", MaxSize-1)
	o, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if o.Len() != MaxSize {
		t.Errorf("Len() = %d, want %d", o.Len(), MaxSize)
	}
}

func TestU_Parse_LeadingZerosCanonical(t *testing.T) {
	a, err := Parse("2.05.04.003")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b := MustParse("2.5.4.3")
	if a != b {
		t.Errorf("leading zeros should encode canonically: %x vs %x", a.Bytes(), b.Bytes())
	}
	if a.String() != "2.5.4.3" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestU_MustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on malformed input")
		}
	}()
	MustParse("1..2")
}

func TestU_FromArcs(t *testing.T) {
	o, err := FromArcs(2, 5, 29, 15)
	if err != nil {
		t.Fatalf("FromArcs() error = %v", err)
	}
	if o.String() != "2.5.29.15" {
		t.Errorf("String() = %q", o.String())
	}

	if _, err := FromArcs(); !errors.Is(err, ErrEmpty) {
		t.Errorf("FromArcs() error = %v, want ErrEmpty", err)
	}
}

func TestU_FromASN1(t *testing.T) {
	o, err := FromASN1(asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1})
	if err != nil {
		t.Fatalf("FromASN1() error = %v", err)
	}
	if o != MustParse("1.3.6.1.5.5.7.3.1") {
		t.Errorf("FromASN1() = %s", o)
	}

	if _, err := FromASN1(asn1.ObjectIdentifier{1, 2, -1}); !errors.Is(err, ErrArcTooBig) {
		t.Errorf("negative arc error = %v, want ErrArcTooBig", err)
	}
}

func TestU_FromBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{name: "valid", input: []byte{0x02, 0x05, 0x04, 0x03}, want: "2.5.4.3"},
		{name: "empty", input: nil, wantErr: ErrEmpty},
		{name: "non-minimal arc", input: []byte{0x02, 0x80, 0x04}, wantErr: ErrEncoding},
		{name: "truncated", input: []byte{0x02, 0x84}, wantErr: ErrEncoding},
		{name: "arc wider than 32 bits", input: []byte{0x90, 0x80, 0x80, 0x80, 0x00}, wantErr: ErrEncoding},
		{name: "too long", input: bytes.Repeat([]byte{0x01}, MaxSize+1), wantErr: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromBytes(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FromBytes() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromBytes() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("FromBytes() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestU_ObjectIdentifier_ZeroValue(t *testing.T) {
	var o ObjectIdentifier
	if !o.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if o.String() != "" {
		t.Errorf("String() = %q, want empty", o.String())
	}
	if o.Arcs() != nil {
		t.Error("Arcs() of zero value should be nil")
	}
	if _, ok := o.Parent(); ok {
		t.Error("zero value should have no parent")
	}
}

func TestU_ObjectIdentifier_Arcs(t *testing.T) {
	o := MustParse("1.2.840.10045.4.3.2")
	arcs := o.Arcs()
	want := []Arc{1, 2, 840, 10045, 4, 3, 2}
	if len(arcs) != len(want) {
		t.Fatalf("Arcs() = %v, want %v", arcs, want)
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("Arcs()[%d] = %d, want %d", i, arcs[i], want[i])
		}
	}

	if a, ok := o.Arc(3); !ok || a != 10045 {
		t.Errorf("Arc(3) = %d, %v", a, ok)
	}
	if _, ok := o.Arc(7); ok {
		t.Error("Arc(7) should be out of range")
	}
}

func TestU_ObjectIdentifier_ParentAndPrefix(t *testing.T) {
	o := MustParse("2.5.29.37.0")
	parent, ok := o.Parent()
	if !ok || parent.String() != "2.5.29.37" {
		t.Fatalf("Parent() = %s, %v", parent, ok)
	}

	tests := []struct {
		prefix string
		want   bool
	}{
		{"2.5.29.37", true},
		{"2.5", true},
		{"2.5.29.37.0", true},
		{"2.5.4", false},
		{"2.5.29.37.0.1", false},
	}
	for _, tt := range tests {
		if got := o.HasPrefix(MustParse(tt.prefix)); got != tt.want {
			t.Errorf("HasPrefix(%s) = %v, want %v", tt.prefix, got, tt.want)
		}
	}

	if p, ok := MustParse("2.5").Parent(); !ok || p.String() != "2" {
		t.Errorf("Parent(2.5) = %s, %v", p, ok)
	}
	if _, ok := MustParse("2").Parent(); ok {
		t.Error("single-arc OID should have no parent")
	}
}

func TestU_ObjectIdentifier_Equal(t *testing.T) {
	if !MustParse("2.5.4.3").Equal(MustParse("2.5.4.3")) {
		t.Error("identical OIDs should be equal")
	}
	if MustParse("2.5.4.3").Equal(MustParse("2.5.4.4")) {
		t.Error("different OIDs should not be equal")
	}
}

func TestU_ObjectIdentifier_Text(t *testing.T) {
	type wrapper struct {
		OID ObjectIdentifier `json:"oid"`
	}

	data, err := json.Marshal(wrapper{OID: MustParse("2.5.4.3")})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"oid":"2.5.4.3"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"oid":"1.3.101.112"}`), &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if w.OID.String() != "1.3.101.112" {
		t.Errorf("Unmarshal() = %s", w.OID)
	}

	if err := json.Unmarshal([]byte(`{"oid":"1..2"}`), &w); !errors.Is(err, ErrInvalid) {
		t.Errorf("Unmarshal(malformed) error = %v, want ErrInvalid", err)
	}
}
