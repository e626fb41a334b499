package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

// openTable wraps oiddb.Table with the list of valid names in the error.
// It returns the canonical table name, so an empty name reads as "all".
func openTable(name string) (string, oiddb.Database, error) {
	if name == "" {
		name = oiddb.TableAll
	}
	db, err := oiddb.Table(name)
	if err != nil {
		return name, db, fmt.Errorf("%w (valid tables: %v)", err, oiddb.TableNames())
	}
	return name, db, nil
}

// encode writes v in a structured format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case formatCBOR:
		data, err := dto.MarshalCBOR(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
