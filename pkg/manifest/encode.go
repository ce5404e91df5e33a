package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// encoderIndent matches the two-space indentation the librarian tooling
// uses for every YAML document it writes.
const encoderIndent = 2

// Encode writes the manifest to w as block-style YAML, preserving struct
// field order and wrapping long lines at the encoder's default width.
func (m *Manifest) Encode(w io.Writer) error {
	if m == nil {
		return errors.New("manifest: manifest is nil")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(encoderIndent)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	return enc.Close()
}

// Marshal renders the manifest to a byte slice. Output is deterministic:
// two serializations of the same manifest are byte-identical.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the manifest to path, creating any missing parent
// directories. An existing file at path is overwritten.
func (m *Manifest) WriteFile(path string) error {
	if path == "" {
		return errors.New("manifest: output path is required")
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("manifest: create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
