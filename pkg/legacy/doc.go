// Package legacy models the old .librarian configuration pair (state.yaml
// and config.yaml): the schema types, the Source/Document wrappers that
// tie a decoded payload back to where it came from, and the Loader
// contract. The default loader lives under internal/legacy.
package legacy
