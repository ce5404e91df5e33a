// Package manifest defines the new librarian.yaml document model and its
// YAML writer. Field order on the structs is the serialization contract:
// version, language, container, generate, release, libraries.
package manifest

// Schema constants for the converted Go library set.
const (
	// SchemaVersion tags the manifest schema revision.
	SchemaVersion = "v0.5.0"

	// Language is the only target this converter emits.
	Language = "go"

	// DefaultTag is the container tag the converter always emits.
	DefaultTag = "latest"
)

// Generation defaults shared by every converted repository.
const (
	DefaultOutputDir        = "./"
	DefaultTransport        = "grpc+rest"
	DefaultReleaseLevel     = "stable"
	DefaultTagFormat        = "{id}/v{version}"
	defaultRestNumericEnums = true
)

// Manifest is the top-level librarian.yaml document.
type Manifest struct {
	Version   string            `yaml:"version"`
	Language  string            `yaml:"language"`
	Container *Container        `yaml:"container,omitempty"`
	Generate  *GenerateDefaults `yaml:"generate,omitempty"`
	Release   *Release          `yaml:"release,omitempty"`
	Libraries []Library         `yaml:"libraries"`
}

// Container identifies the code-generator execution environment.
type Container struct {
	Image string `yaml:"image"`
	Tag   string `yaml:"tag"`
}

// GenerateDefaults carries the repository-wide generation section: where
// generated code lands plus the settings every library inherits.
type GenerateDefaults struct {
	OutputDir string           `yaml:"output_dir"`
	Defaults  GenerateSettings `yaml:"defaults"`
}

// GenerateSettings is the per-library generation configuration nested under
// the defaults key.
type GenerateSettings struct {
	Transport        string `yaml:"transport"`
	RestNumericEnums bool   `yaml:"rest_numeric_enums"`
	ReleaseLevel     string `yaml:"release_level"`
}

// Release holds release automation settings.
type Release struct {
	TagFormat string `yaml:"tag_format"`
}

// Library is a single converted library record.
type Library struct {
	Name string `yaml:"name"`

	// Version is always written, as an explicit null when the legacy
	// record never carried one, so consumers can tell missing from empty.
	Version  *string          `yaml:"version"`
	Generate *LibraryGenerate `yaml:"generate,omitempty"`

	// Comment carries free-text annotations such as the release-blocked
	// marker. YAML has no structured comment channel, so the annotation
	// rides along under an underscore-prefixed key.
	Comment string `yaml:"_comment,omitempty"`
}

// LibraryGenerate describes which APIs a library regenerates from and which
// generated files to keep or remove afterwards.
type LibraryGenerate struct {
	APIs   []API    `yaml:"apis"`
	Keep   []string `yaml:"keep,omitempty"`
	Remove []string `yaml:"remove,omitempty"`
}

// API is one upstream API definition inside a generate section.
type API struct {
	Path          string `yaml:"path"`
	ServiceConfig string `yaml:"service_config,omitempty"`
}

// New returns a Manifest pre-populated with the constant header fields and
// generation defaults. Callers append libraries and, when the source state
// carried an image reference, attach a Container.
func New() *Manifest {
	return &Manifest{
		Version:  SchemaVersion,
		Language: Language,
		Generate: &GenerateDefaults{
			OutputDir: DefaultOutputDir,
			Defaults: GenerateSettings{
				Transport:        DefaultTransport,
				RestNumericEnums: defaultRestNumericEnums,
				ReleaseLevel:     DefaultReleaseLevel,
			},
		},
		Release: &Release{
			TagFormat: DefaultTagFormat,
		},
	}
}
