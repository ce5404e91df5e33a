package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strptr(s string) *string { return &s }

func sampleManifest() *Manifest {
	m := New()
	m.Container = &Container{Image: "gcr.io/foo/bar", Tag: DefaultTag}
	m.Libraries = []Library{
		{
			Name:    "secretmanager",
			Version: strptr("1.15.0"),
			Generate: &LibraryGenerate{
				APIs: []API{
					{Path: "google/cloud/secretmanager/v1", ServiceConfig: "secretmanager_v1.yaml"},
					{Path: "google/cloud/secretmanager/v1beta2"},
				},
				Keep: []string{"secretmanager/apiv1/iam.go"},
			},
		},
		{Name: "storage", Version: strptr("1.50.0")},
	}
	return m
}

func TestMarshalTopLevelKeyOrder(t *testing.T) {
	data, err := sampleManifest().Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var topLevel []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-") {
			continue
		}
		key, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		topLevel = append(topLevel, key)
	}

	want := []string{"version", "language", "container", "generate", "release", "libraries"}
	if diff := cmp.Diff(want, topLevel); diff != "" {
		t.Errorf("top-level key order mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalEmptyManifest(t *testing.T) {
	data, err := New().Marshal()
	if err != nil {
		t.Fatal(err)
	}

	want := "version: v0.5.0\n" +
		"language: go\n" +
		"generate:\n" +
		"  output_dir: ./\n" +
		"  defaults:\n" +
		"    transport: grpc+rest\n" +
		"    rest_numeric_enums: true\n" +
		"    release_level: stable\n" +
		"release:\n" +
		"  tag_format: '{id}/v{version}'\n" +
		"libraries: []\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("empty manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalVersionlessLibrary(t *testing.T) {
	m := New()
	m.Libraries = []Library{{Name: "retired-library"}}

	data, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "    version: null\n") {
		t.Errorf("libraries without a version must serialize an explicit null:\n%s", data)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := sampleManifest().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	second, err := sampleManifest().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical manifests must serialize to identical bytes")
	}
}

func TestMarshalBlockStyle(t *testing.T) {
	data, err := sampleManifest().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "  - name: secretmanager\n") {
		t.Errorf("expected block-style library entries:\n%s", out)
	}
	if strings.Contains(out, "libraries: [") {
		t.Errorf("non-empty collections must not use flow style:\n%s", out)
	}
}

func TestMarshalPreservesNonASCII(t *testing.T) {
	m := New()
	m.Libraries = []Library{{Name: "traducción", Version: strptr("1.0.0")}}

	data, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "traducción") {
		t.Errorf("non-ASCII characters must pass through literally:\n%s", data)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "go", "librarian.yaml")

	if err := sampleManifest().WriteFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := sampleManifest().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Error("file contents differ from marshaled manifest")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "librarian.yaml")

	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := sampleManifest().WriteFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file must be replaced, not appended to")
	}
}
