// Package gen turns the YAML OID registry into the Go tables of pkg/oiddb.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/remiblancher/qoid/pkg/oid"
)

// Entry is one registry line.
type Entry struct {
	OID  string `yaml:"oid"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Source is one registry file, usually one RFC or standard.
type Source struct {
	Source    string  `yaml:"source"`
	Title     string  `yaml:"title"`
	Reference string  `yaml:"reference"`
	Entries   []Entry `yaml:"entries"`

	// File is the path the source was loaded from.
	File string `yaml:"-"`
}

// Registry is the full set of sources, sorted by source name.
type Registry struct {
	Sources []*Source
}

// ErrInvalidRegistry wraps every validation failure.
var ErrInvalidRegistry = errors.New("invalid registry")

// kindIdents maps registry kinds to the oiddb constants they render as.
var kindIdents = map[string]string{
	"attribute":    "KindAttribute",
	"object-class": "KindObjectClass",
	"extension":    "KindExtension",
	"algorithm":    "KindAlgorithm",
	"other":        "KindOther",
}

// LoadRegistry reads every *.yaml file in dir and validates the result.
func LoadRegistry(dir string) (*Registry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list registry: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no *.yaml files in %s", ErrInvalidRegistry, dir)
	}

	reg := &Registry{}
	for _, path := range paths {
		src, err := LoadSource(path)
		if err != nil {
			return nil, err
		}
		reg.Sources = append(reg.Sources, src)
	}
	sort.Slice(reg.Sources, func(i, j int) bool {
		return reg.Sources[i].Source < reg.Sources[j].Source
	})

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadSource reads a single registry file. Unknown keys are rejected.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var src Source
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	src.File = path
	if src.Source == "" {
		src.Source = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &src, nil
}

// Validate checks every source and the uniqueness of OIDs, names and
// generated identifiers across the whole registry.
func (r *Registry) Validate() error {
	var (
		sources = make(map[string]bool)
		oids    = make(map[oid.ObjectIdentifier]string)
		names   = make(map[string]string)
		idents  = make(map[string]string)
	)

	for _, src := range r.Sources {
		if err := src.validate(); err != nil {
			return err
		}
		if sources[src.Source] {
			return fmt.Errorf("%w: source %q defined twice", ErrInvalidRegistry, src.Source)
		}
		sources[src.Source] = true

		for _, e := range src.Entries {
			where := src.Source + "/" + e.Name

			o, _ := oid.Parse(e.OID)
			if prev, ok := oids[o]; ok {
				return fmt.Errorf("%w: %s: OID %s already registered as %s", ErrInvalidRegistry, where, e.OID, prev)
			}
			oids[o] = where

			if prev, ok := names[e.Name]; ok {
				return fmt.Errorf("%w: %s: name already registered by %s", ErrInvalidRegistry, where, prev)
			}
			names[e.Name] = where

			ident := src.Ident(e)
			if prev, ok := idents[ident]; ok {
				return fmt.Errorf("%w: %s: identifier %s collides with %s", ErrInvalidRegistry, where, ident, prev)
			}
			idents[ident] = where
		}
	}
	return nil
}

func (s *Source) validate() error {
	if !isSourceName(s.Source) {
		return fmt.Errorf("%w: %s: source name %q must be lowercase letters and digits", ErrInvalidRegistry, s.File, s.Source)
	}
	if s.Title == "" {
		return fmt.Errorf("%w: %s: title is required", ErrInvalidRegistry, s.Source)
	}
	if len(s.Entries) == 0 {
		return fmt.Errorf("%w: %s: no entries", ErrInvalidRegistry, s.Source)
	}

	for i, e := range s.Entries {
		if _, err := oid.Parse(e.OID); err != nil {
			return fmt.Errorf("%w: %s entry %d: %w", ErrInvalidRegistry, s.Source, i, err)
		}
		if !isEntryName(e.Name) {
			return fmt.Errorf("%w: %s entry %d: invalid name %q", ErrInvalidRegistry, s.Source, i, e.Name)
		}
		if _, ok := kindIdents[e.Kind]; !ok {
			return fmt.Errorf("%w: %s entry %d (%s): unknown kind %q", ErrInvalidRegistry, s.Source, i, e.Name, e.Kind)
		}
	}
	return nil
}

// Len returns the number of entries across all sources.
func (r *Registry) Len() int {
	n := 0
	for _, src := range r.Sources {
		n += len(src.Entries)
	}
	return n
}

func isSourceName(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// isEntryName accepts the LDAP descriptor syntax: a letter followed by
// letters, digits and hyphens.
func isEntryName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return !strings.HasSuffix(s, "-")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
