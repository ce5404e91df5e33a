package convert

import (
	"strings"

	"github.com/goliatone/go-librarian/pkg/manifest"
)

const digestMarker = "@sha256"

// parseImage splits a container image reference into an image path and a
// tag. References arrive either digest-pinned (registry/path@sha256:...)
// or tagged (registry/path:tag).
//
// The digest branch drops the final path segment of the base whenever the
// base contains a separator, and resolves a tag from the reference's last
// :-segment when the base carries a colon. The assembler then overwrites
// that tag with latest. Both quirks match the behaviour of the previous
// converter; consumers already depend on the emitted output.
func parseImage(ref string) (string, string) {
	if strings.Contains(ref, digestMarker) {
		base, _, _ := strings.Cut(ref, "@")

		image := base
		if i := strings.LastIndex(base, "/"); i != -1 {
			image = base[:i]
		}

		tag := manifest.DefaultTag
		if strings.Contains(base, ":") {
			tag = ref[strings.LastIndex(ref, ":")+1:]
		}
		return image, tag
	}

	if i := strings.LastIndex(ref, ":"); i != -1 {
		return ref[:i], ref[i+1:]
	}
	return ref, manifest.DefaultTag
}
