package legacy

import "path/filepath"

// SourceKind selects the loading strategy for a document.
type SourceKind string

const (
	// SourceKindFile reads from an absolute or working-directory-relative
	// path.
	SourceKindFile SourceKind = "file"

	// SourceKindFS reads from an injected fs.FS. Tests and embedded
	// fixtures use this kind.
	SourceKindFS SourceKind = "fs"
)

// Source locates one legacy document. The zero value is invalid; build
// sources with FileSource or FSSource.
type Source struct {
	kind     SourceKind
	location string
}

// FileSource points at an on-disk document.
func FileSource(path string) Source {
	return Source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// FSSource points at a document inside an fs.FS.
func FSSource(name string) Source {
	return Source{kind: SourceKindFS, location: name}
}

// Kind reports which loading strategy the source selects.
func (s Source) Kind() SourceKind {
	return s.kind
}

// Location returns the path or fs name the source points at.
func (s Source) Location() string {
	return s.location
}

// IsZero reports whether the source was never initialised.
func (s Source) IsZero() bool {
	return s.kind == ""
}
