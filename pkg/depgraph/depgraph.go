// Package depgraph defines the serialization format for dependency scan
// results consumed by the renderer.
//
// A scan maps each module identifier to the identifiers it depends on, plus
// the dependency cycles found along the way:
//
//	{
//	  "modules": {
//	    "pages/Home": ["components/Button", "utils/format"],
//	    "components/Button": []
//	  },
//	  "circular": [["utils/a", "utils/b"]]
//	}
//
// This package only moves the data; it does not validate that the mapping is
// semantically consistent.
package depgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Result is one dependency scan: the module adjacency map and the list of
// dependency cycles, each cycle an ordered chain of module identifiers.
type Result struct {
	Modules  map[string][]string `json:"modules"`
	Circular [][]string          `json:"circular,omitempty"`
}

// Marshal converts a scan result to indented JSON bytes.
func Marshal(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a scan result as JSON to an io.Writer.
func Write(r Result, w io.Writer) error {
	return writeTo(r, w)
}

// WriteFile writes a scan result to a JSON file with 0644 permissions.
func WriteFile(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(r, f)
}

// Read decodes a JSON scan result from an io.Reader.
func Read(r io.Reader) (Result, error) {
	return readFrom(r)
}

// ReadFile reads a JSON file and returns the decoded scan result.
func ReadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

func writeTo(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (Result, error) {
	var out Result
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode: %w", err)
	}
	if out.Modules == nil {
		out.Modules = make(map[string][]string)
	}
	return out, nil
}
