// Package file reads source bundles from disk and writes exported models to a directory.
package file

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/sbmlexport/internal/compiler"
	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/adapters/memory"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Open reads a bundle file and returns a source over its graph.
func Open(path string) (*memory.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return memory.NewSource(g), nil
}

// Decode reads a YAML or JSON bundle. The document is either a mapping with
// dbVersion and records, or a bare list of records.
func Decode(r io.Reader) (*domain.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty bundle")
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}

	var bundle dto.Bundle
	switch v := raw.(type) {
	case []any:
		bundle.Records = make([]dto.Record, 0, len(v))
		for i, item := range v {
			rec, err := compiler.Decode(item)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			bundle.Records = append(bundle.Records, rec)
		}
	case map[string]any:
		bundle, err = compiler.DecodeBundle(v)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unexpected bundle root %T", raw)
	}

	return compiler.Compile(bundle.DBVersion, bundle.Records)
}

// Encode writes a bundle as YAML.
func Encode(w io.Writer, bundle dto.Bundle) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	return enc.Close()
}
