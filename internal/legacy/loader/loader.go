// Package loader implements the default legacy.Loader. Conversion only
// ever reads local inputs, so the loader knows two strategies: operating
// system paths and an injected fs.FS.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-librarian/pkg/legacy"
)

// Loader reads legacy documents from disk or from an fs.FS.
type Loader struct {
	fsys fs.FS
}

var _ legacy.Loader = (*Loader)(nil)

// New constructs a Loader. A nil fsys restricts it to operating system
// paths; fs sources then fail with a configuration error.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads the document the source points at and wraps it together with
// its origin. The converter calls this twice per run, once for each half
// of the configuration pair.
func (l *Loader) Load(ctx context.Context, src legacy.Source) (legacy.Document, error) {
	if src.IsZero() {
		return legacy.Document{}, errors.New("loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return legacy.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case legacy.SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case legacy.SourceKindFS:
		if l.fsys == nil {
			err = errors.New("no filesystem configured for fs source")
		} else {
			data, err = fs.ReadFile(l.fsys, src.Location())
		}
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return legacy.Document{}, fmt.Errorf("loader: read %s: %w", src.Location(), err)
	}

	return legacy.NewDocument(src, data)
}
