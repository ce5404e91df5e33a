package legacy

import "context"

// Loader fetches legacy documents by source kind. The default
// implementation lives under internal/legacy; the converter accepts any
// Loader so tests can substitute fixtures.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}
