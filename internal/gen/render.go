package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// OIDPackage is the import path of the ObjectIdentifier type used by
// generated code.
const OIDPackage = "github.com/remiblancher/qoid/pkg/oid"

// header marks generated files; Write only removes files carrying it.
const header = "// Code generated by qoid-gen. DO NOT EDIT."

// File is one rendered Go source file.
type File struct {
	Name    string
	Content []byte
}

// table is one Database variable of gen_tables.go. An empty kind selects
// every entry.
type table struct {
	Name string
	Doc  string
	Kind string
}

var tables = []table{
	{Name: "DB", Doc: "DB holds every registry entry."},
	{Name: "Attributes", Doc: "Attributes holds the attribute type entries of DB.", Kind: "attribute"},
	{Name: "ObjectClasses", Doc: "ObjectClasses holds the object class entries of DB.", Kind: "object-class"},
	{Name: "Extensions", Doc: "Extensions holds the certificate extension entries of DB.", Kind: "extension"},
	{Name: "Algorithms", Doc: "Algorithms holds the algorithm and curve entries of DB.", Kind: "algorithm"},
}

var sourceTmpl = template.Must(template.New("source").Parse(header + `

package {{.Package}}

import "{{.OIDPackage}}"

// {{.Title}}
// {{.Reference}}
var (
{{- range .Entries}}
	{{.Ident}} = NamedOID{OID: oid.MustParse({{printf "%q" .OID}}), Name: {{printf "%q" .Name}}, Kind: {{.Kind}}}
{{- end}}
)
`))

var tablesTmpl = template.Must(template.New("tables").Parse(header + `

package {{.Package}}
{{range .Tables}}
// {{.Doc}}
var {{.Name}} = New(
{{- range .Idents}}
	&{{.}},
{{- end}}
)
{{end}}`))

type renderedEntry struct {
	Ident string
	OID   string
	Name  string
	Kind  string
}

type renderedTable struct {
	Name   string
	Doc    string
	Idents []string
}

// Render produces one gen_<source>.go file per source plus gen_tables.go.
func Render(reg *Registry, pkg string) ([]File, error) {
	var (
		files []File
		all   []struct{ ident, kind string }
	)

	for _, src := range reg.Sources {
		data := struct {
			Package    string
			OIDPackage string
			Title      string
			Reference  string
			Entries    []renderedEntry
		}{
			Package:    pkg,
			OIDPackage: OIDPackage,
			Title:      src.Title,
			Reference:  src.Reference,
		}
		for _, e := range src.Entries {
			ident := src.Ident(e)
			data.Entries = append(data.Entries, renderedEntry{
				Ident: ident,
				OID:   e.OID,
				Name:  e.Name,
				Kind:  kindIdents[e.Kind],
			})
			all = append(all, struct{ ident, kind string }{ident, e.Kind})
		}

		content, err := execute(sourceTmpl, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", src.Source, err)
		}
		files = append(files, File{Name: "gen_" + src.Source + ".go", Content: content})
	}

	var rendered []renderedTable
	for _, t := range tables {
		rt := renderedTable{Name: t.Name, Doc: t.Doc}
		for _, e := range all {
			if t.Kind == "" || e.kind == t.Kind {
				rt.Idents = append(rt.Idents, e.ident)
			}
		}
		rendered = append(rendered, rt)
	}
	content, err := execute(tablesTmpl, struct {
		Package string
		Tables  []renderedTable
	}{pkg, rendered})
	if err != nil {
		return nil, fmt.Errorf("failed to render tables: %w", err)
	}
	files = append(files, File{Name: "gen_tables.go", Content: content})

	return files, nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// Write stores files in dir and removes generated gen_*.go files that are
// no longer produced, such as those of a deleted registry source.
func Write(dir string, files []File) error {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
	}

	stale, err := filepath.Glob(filepath.Join(dir, "gen_*.go"))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if keep[filepath.Base(path)] || !isGenerated(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove stale %s: %w", path, err)
		}
	}
	return nil
}

// Diff returns the names of files in dir whose content differs from files,
// including missing ones and generated gen_*.go files that Write would remove.
func Diff(dir string, files []File) ([]string, error) {
	var changed []string
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
		current, err := os.ReadFile(filepath.Join(dir, f.Name))
		if os.IsNotExist(err) {
			changed = append(changed, f.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(current, f.Content) {
			changed = append(changed, f.Name)
		}
	}

	stale, err := filepath.Glob(filepath.Join(dir, "gen_*.go"))
	if err != nil {
		return nil, err
	}
	for _, path := range stale {
		if name := filepath.Base(path); !keep[name] && isGenerated(path) {
			changed = append(changed, name)
		}
	}
	return changed, nil
}

func isGenerated(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(string(data), header)
}
