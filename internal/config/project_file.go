package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JeongHan-Bae/manifestgen/internal/manifest"
)

// ProjectFile is the optional override document for the hand-authored
// manifest data. Sections left out keep their defaults.
type ProjectFile struct {
	Project  *manifest.Identity   `yaml:"project" json:"project"`
	Baseline *manifest.Dependency `yaml:"baseline" json:"baseline"`
	Badge    *manifest.BadgeStyle `yaml:"badge" json:"badge"`
}

// LoadProjectFile reads and parses a project override file from the given
// path. YAML and JSON are supported, selected by extension.
func LoadProjectFile(path string) (*ProjectFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrProjectFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	return ParseProjectFile(data, filepath.Ext(path))
}

// ParseProjectFile parses a project override document from raw bytes
func ParseProjectFile(data []byte, ext string) (*ProjectFile, error) {
	ext = strings.ToLower(ext)

	var pf ProjectFile
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProjectFile, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProjectFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	return &pf, nil
}
