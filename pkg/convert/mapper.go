package convert

import (
	"github.com/goliatone/go-librarian/pkg/legacy"
	"github.com/goliatone/go-librarian/pkg/manifest"
)

// releaseBlockedSet extracts the identifiers flagged release_blocked from
// the overrides document. Membership is all that matters; callers never
// iterate it in order.
func releaseBlockedSet(cfg *legacy.Config) map[string]bool {
	blocked := make(map[string]bool)
	if cfg == nil {
		return blocked
	}
	for _, lib := range cfg.Libraries {
		if lib.ReleaseBlocked {
			blocked[lib.ID] = true
		}
	}
	return blocked
}

// mapLibrary converts one legacy library record into its new-format shape.
// Records without APIs keep only name and version; the generate section is
// omitted entirely.
func mapLibrary(lib legacy.Library, blocked bool) manifest.Library {
	out := manifest.Library{
		Name:    lib.ID,
		Version: lib.Version,
	}

	if len(lib.APIs) > 0 {
		gen := &manifest.LibraryGenerate{
			APIs: make([]manifest.API, 0, len(lib.APIs)),
		}
		for _, api := range lib.APIs {
			gen.APIs = append(gen.APIs, manifest.API{
				Path:          api.Path,
				ServiceConfig: api.ServiceConfig,
			})
		}
		if len(lib.PreserveRegex) > 0 {
			gen.Keep = lib.PreserveRegex
		}
		if len(lib.RemoveRegex) > 0 {
			gen.Remove = lib.RemoveRegex
		}
		out.Generate = gen
	}

	if blocked {
		out.Comment = ReleaseBlockedNote
	}
	return out
}
