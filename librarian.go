// Package librarian converts the legacy .librarian configuration pair
// (state.yaml plus config.yaml) into the new librarian.yaml manifest for
// the Go library set. The root package re-exports the pipeline pieces and
// offers one-call helpers; the stages live under pkg/legacy, pkg/convert,
// and pkg/manifest.
package librarian

import (
	"context"
	"io/fs"

	internalloader "github.com/goliatone/go-librarian/internal/legacy/loader"
	"github.com/goliatone/go-librarian/pkg/convert"
	"github.com/goliatone/go-librarian/pkg/legacy"
)

// Request aliases the converter request for convenience.
type Request = convert.Request

// Result aliases the converter result for convenience.
type Result = convert.Result

// Option aliases the converter option type so callers can configure the
// one-call helpers without importing pkg/convert.
type Option = convert.Option

// NewConverter exposes the converter constructor from the top-level module.
func NewConverter(options ...convert.Option) *convert.Converter {
	return convert.New(options...)
}

// NewLoader constructs the default legacy document loader. Pass nil to read
// from operating system paths. The helper lives here rather than in
// pkg/legacy to keep the interface package free of implementation imports.
func NewLoader(fsys fs.FS) legacy.Loader {
	return internalloader.New(fsys)
}

// Convert runs a conversion with a default converter. It is the simplest
// entry point for callers that already hold sources.
func Convert(ctx context.Context, req Request, options ...Option) (*Result, error) {
	return convert.New(options...).Convert(ctx, req)
}

// ConvertFiles loads state.yaml and config.yaml from the given paths,
// converts them, and writes the manifest to outputPath, creating parent
// directories as needed. The returned result still holds the manifest for
// callers that want to inspect or report on it.
func ConvertFiles(ctx context.Context, statePath, configPath, outputPath string, options ...Option) (*Result, error) {
	result, err := Convert(ctx, Request{
		State:  legacy.FileSource(statePath),
		Config: legacy.FileSource(configPath),
	}, options...)
	if err != nil {
		return nil, err
	}
	if err := result.Manifest.WriteFile(outputPath); err != nil {
		return nil, err
	}
	return result, nil
}
