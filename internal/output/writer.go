package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JeongHan-Bae/manifestgen/internal/manifest"
)

// Artifact filenames, fixed relative to the output directory.
const (
	ManifestJSONFile = "dependencies.json"
	ManifestTOMLFile = "dependencies.toml"
	BadgeFile        = "version_badge.json"
)

// Writer renders manifest artifacts into a target directory. Every artifact
// is built fully in memory and written with a single WriteFile, so a reader
// never observes a partial file from a completed call.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir, defaulting to the current
// directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// WriteManifestJSON renders the manifest as indented JSON and returns the
// written path.
func (w *Writer) WriteManifestJSON(m *manifest.Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return w.write(ManifestJSONFile, append(data, '\n'))
}

// WriteManifestTOML renders the manifest through the TOML emitter and
// returns the written path.
func (w *Writer) WriteManifestTOML(m *manifest.Manifest) (string, error) {
	data, err := manifest.EncodeTOML(m)
	if err != nil {
		return "", err
	}
	return w.write(ManifestTOMLFile, data)
}

// WriteBadge renders the badge descriptor and returns the written path.
func (w *Writer) WriteBadge(b manifest.Badge) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", err
	}
	return w.write(BadgeFile, append(data, '\n'))
}

func (w *Writer) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
