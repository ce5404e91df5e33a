package legacy

// State models the old .librarian/state.yaml inventory: the generator
// container image plus every library the repository tracks, in file order.
type State struct {
	// Image is the code-generator container image reference. It may carry a
	// tag or a sha256 digest suffix, or be absent entirely.
	Image string `yaml:"image"`

	// Libraries lists the tracked libraries in document order.
	Libraries []Library `yaml:"libraries" validate:"dive"`
}

// Library is a single library record in state.yaml. Several fields
// (SourceRoots, LastGeneratedCommit, ReleaseExcludePaths, TagFormat) exist
// only in the old schema and are dropped during conversion; they are still
// parsed so the types document the full legacy shape.
type Library struct {
	ID string `yaml:"id" validate:"required"`

	// Version is nil when the old record never carried one; the converter
	// forwards the absence instead of collapsing it to an empty string.
	Version             *string  `yaml:"version,omitempty"`
	LastGeneratedCommit string   `yaml:"last_generated_commit,omitempty"`
	APIs                []API    `yaml:"apis,omitempty"`
	SourceRoots         []string `yaml:"source_roots,omitempty"`
	PreserveRegex       []string `yaml:"preserve_regex,omitempty"`
	RemoveRegex         []string `yaml:"remove_regex,omitempty"`
	ReleaseExcludePaths []string `yaml:"release_exclude_paths,omitempty"`
	TagFormat           string   `yaml:"tag_format,omitempty"`
}

// API identifies one upstream API definition a library is generated from.
type API struct {
	// Path is the API path relative to the googleapis root.
	Path string `yaml:"path"`

	// ServiceConfig is the service config file name, when one exists.
	ServiceConfig string `yaml:"service_config,omitempty"`
}

// Config models the old .librarian/config.yaml overrides document.
type Config struct {
	// GlobalFilesAllowlist lists repository files the generator container
	// may touch.
	GlobalFilesAllowlist []GlobalFile `yaml:"global_files_allowlist,omitempty"`

	// Libraries contains per-library overrides keyed by id.
	Libraries []ConfigLibrary `yaml:"libraries,omitempty"`
}

// GlobalFile is one entry of the global files allowlist.
type GlobalFile struct {
	Path        string `yaml:"path"`
	Permissions string `yaml:"permissions"`
}

// ConfigLibrary is a per-library override in config.yaml. Only
// ReleaseBlocked feeds the conversion; the other fields are parsed for
// completeness.
type ConfigLibrary struct {
	ID              string `yaml:"id"`
	NextVersion     string `yaml:"next_version,omitempty"`
	GenerateBlocked bool   `yaml:"generate_blocked,omitempty"`
	ReleaseBlocked  bool   `yaml:"release_blocked,omitempty"`
}
