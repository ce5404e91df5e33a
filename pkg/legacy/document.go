package legacy

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate enforces the struct tags on decoded documents. A single
// instance caches the compiled tag metadata.
var validate = validator.New()

// Document is one loaded legacy YAML payload together with its origin.
// Decoding is deferred until State or Config is called, so the loader stays
// agnostic about which half of the configuration pair it fetched.
type Document struct {
	src Source
	raw []byte
}

// NewDocument wraps a loaded payload. Empty payloads are rejected here so
// decode errors always carry a real location.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src.IsZero() {
		return Document{}, errors.New("legacy: source is required")
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("legacy: document %q is empty", src.Location())
	}
	return Document{src: src, raw: append([]byte(nil), raw...)}, nil
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.src
}

// Location returns the origin's string form for error messages.
func (d Document) Location() string {
	return d.src.Location()
}

// State decodes the document as a state.yaml inventory and checks that
// every library record carries an identifier. A record without an id fails
// the whole decode so conversion never runs against a half-usable
// inventory.
func (d Document) State() (*State, error) {
	var state State
	if err := d.decode(&state); err != nil {
		return nil, err
	}
	if err := validate.Struct(&state); err != nil {
		return nil, fmt.Errorf("legacy: invalid state document %q: %w", d.Location(), err)
	}
	return &state, nil
}

// Config decodes the document as a config.yaml overrides file. Overrides
// have no required fields; entries without an id simply never match a
// library.
func (d Document) Config() (*Config, error) {
	var cfg Config
	if err := d.decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (d Document) decode(out any) error {
	if err := yaml.Unmarshal(d.raw, out); err != nil {
		return fmt.Errorf("legacy: parse document %q: %w", d.Location(), err)
	}
	return nil
}
