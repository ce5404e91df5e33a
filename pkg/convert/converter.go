// Package convert turns the legacy .librarian configuration pair into a
// new-format manifest. The pipeline is strictly linear: load both
// documents, map every library in input order, assemble the manifest.
package convert

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/phuslu/log"

	internalloader "github.com/goliatone/go-librarian/internal/legacy/loader"
	"github.com/goliatone/go-librarian/pkg/legacy"
	"github.com/goliatone/go-librarian/pkg/manifest"
)

// ReleaseBlockedNote is the free-text annotation attached to converted
// libraries whose release is blocked. The exact wording is load-bearing:
// downstream consumers of librarian.yaml grep for it.
const ReleaseBlockedNote = "release_blocked: true (handwritten code)"

// Option customises the converter configuration.
type Option func(*Converter)

// WithLoader injects a custom legacy document loader.
func WithLoader(loader legacy.Loader) Option {
	return func(c *Converter) {
		c.loader = loader
	}
}

// WithLogger attaches a logger for progress diagnostics. Conversion is
// silent without one.
func WithLogger(logger *log.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// Converter coordinates the load → map → assemble sequence. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
type Converter struct {
	loader legacy.Loader
	logger *log.Logger
}

// New constructs a Converter applying any provided options.
func New(options ...Option) *Converter {
	c := &Converter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.loader == nil {
		c.loader = internalloader.New(nil)
	}
	return c
}

// Request describes the inputs required to convert a repository's legacy
// configuration.
type Request struct {
	// State identifies the state.yaml document. Optional when
	// StateDocument is supplied.
	State legacy.Source

	// Config identifies the config.yaml document. Optional when
	// ConfigDocument is supplied.
	Config legacy.Source

	// StateDocument allows callers to bypass the loader when they already
	// hold the payload.
	StateDocument *legacy.Document

	// ConfigDocument mirrors StateDocument for the overrides file.
	ConfigDocument *legacy.Document
}

// Result carries the assembled manifest plus the conversion counters the
// CLI reports.
type Result struct {
	// Manifest is the converted document, ready to serialize.
	Manifest *manifest.Manifest

	// Converted is the number of library records in the manifest.
	Converted int

	// Blocked lists the identifiers flagged release_blocked in the
	// overrides document, sorted, whether or not they exist in the state
	// inventory.
	Blocked []string
}

// Convert executes the loader → parser → mapper → assembler sequence.
// Conversion is all-or-nothing: any load, parse, or validation failure
// returns before a manifest exists.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("convert: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state, err := c.resolveState(ctx, req)
	if err != nil {
		return nil, err
	}
	cfg, err := c.resolveConfig(ctx, req)
	if err != nil {
		return nil, err
	}

	blocked := releaseBlockedSet(cfg)

	m := manifest.New()
	if image, _ := parseImage(state.Image); image != "" {
		// parseImage resolves a tag, but the emitted container always
		// pins latest.
		m.Container = &manifest.Container{
			Image: image,
			Tag:   manifest.DefaultTag,
		}
	}

	for _, lib := range state.Libraries {
		m.Libraries = append(m.Libraries, mapLibrary(lib, blocked[lib.ID]))
	}

	names := make([]string, 0, len(blocked))
	for name := range blocked {
		names = append(names, name)
	}
	sort.Strings(names)

	if c.logger != nil {
		c.logger.Info().
			Int("libraries", len(m.Libraries)).
			Int("release_blocked", len(names)).
			Msg("conversion complete")
	}

	return &Result{
		Manifest:  m,
		Converted: len(m.Libraries),
		Blocked:   names,
	}, nil
}

func (c *Converter) resolveState(ctx context.Context, req Request) (*legacy.State, error) {
	doc, err := c.resolveDocument(ctx, req.StateDocument, req.State, "state")
	if err != nil {
		return nil, err
	}
	return doc.State()
}

func (c *Converter) resolveConfig(ctx context.Context, req Request) (*legacy.Config, error) {
	doc, err := c.resolveDocument(ctx, req.ConfigDocument, req.Config, "config")
	if err != nil {
		return nil, err
	}
	return doc.Config()
}

func (c *Converter) resolveDocument(ctx context.Context, doc *legacy.Document, src legacy.Source, kind string) (legacy.Document, error) {
	if doc != nil {
		return *doc, nil
	}
	if src.IsZero() {
		return legacy.Document{}, fmt.Errorf("convert: %s source is required", kind)
	}
	if c.logger != nil {
		c.logger.Debug().Str("source", src.Location()).Msgf("loading %s document", kind)
	}
	loaded, err := c.loader.Load(ctx, src)
	if err != nil {
		return legacy.Document{}, fmt.Errorf("convert: load %s document: %w", kind, err)
	}
	return loaded, nil
}
