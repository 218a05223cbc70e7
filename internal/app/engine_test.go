package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeongHan-Bae/manifestgen/internal/config"
	"github.com/JeongHan-Bae/manifestgen/internal/manifest"
	"github.com/JeongHan-Bae/manifestgen/internal/output"
	"github.com/JeongHan-Bae/manifestgen/internal/utils"
)

const rootList = `cmake_minimum_required(VERSION 3.20)
project(JH-Toolkit LANGUAGES CXX)
set(PROJECT_VERSION 2.0.1)
`

const testList = `include(FetchContent)
FetchContent_Declare(
    foo
    GIT_REPOSITORY https://x/foo
    GIT_TAG v1
)
FetchContent_MakeAvailable(foo)
FetchContent_MakeAvailable(bar)
`

func testEngine(t *testing.T, root, out string) *Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Inputs.Root = root
	cfg.Output.Directory = out

	log := utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json", Output: &bytes.Buffer{}})
	e, err := NewEngine(EngineOptions{Config: cfg, Logger: log})
	require.NoError(t, err)
	return e
}

func writeFixtures(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tests"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "CMakeLists.txt"), []byte(rootList), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tests", "CMakeLists.txt"), []byte(testList), 0644))
}

func TestEngine_Run_FullScenario(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFixtures(t, root)

	res, err := testEngine(t, root, out).Run()

	require.NoError(t, err)
	assert.Equal(t, "2.0.1", res.Version)
	assert.Len(t, res.Paths, 3)

	data, err := os.ReadFile(filepath.Join(out, output.ManifestJSONFile))
	require.NoError(t, err)

	var m manifest.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "2.0.1", m.Project.Version)

	require.Len(t, m.Dependencies, 3)
	assert.Equal(t, "C++20 Standard Library", m.Dependencies[0].Name)

	foo := m.Dependencies[1]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, "https://x/foo", foo.Repository)
	assert.Equal(t, "v1", foo.Version)
	assert.Equal(t, "CMAKE_BUILD_TYPE=Debug", foo.Condition)
	assert.Equal(t, "FetchContent from GitHub", foo.FetchMethod)

	bar := m.Dependencies[2]
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, "unknown", bar.Repository)
	assert.Equal(t, "unknown", bar.Version)
}

func TestEngine_Run_BadgeCarriesResolvedVersion(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFixtures(t, root)

	_, err := testEngine(t, root, out).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, output.BadgeFile))
	require.NoError(t, err)

	var b manifest.Badge
	require.NoError(t, json.Unmarshal(data, &b))
	assert.Equal(t, 1, b.SchemaVersion)
	assert.Equal(t, "2.0.1", b.Message)
	assert.Equal(t, "JH-Toolkit", b.Label)
}

func TestEngine_Run_MissingInputs(t *testing.T) {
	root := t.TempDir() // no listfiles at all
	out := t.TempDir()

	res, err := testEngine(t, root, out).Run()

	require.NoError(t, err)
	assert.Equal(t, "unknown", res.Version)

	data, err := os.ReadFile(filepath.Join(out, output.ManifestJSONFile))
	require.NoError(t, err)

	var m manifest.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "unknown", m.Project.Version)
	assert.Equal(t, "JH-Toolkit", m.Project.Name)
	// Only the baseline remains.
	require.Len(t, m.Dependencies, 1)
	assert.Equal(t, "C++20 Standard Library", m.Dependencies[0].Name)
}

func TestEngine_Run_FormatSelector(t *testing.T) {
	root := t.TempDir()
	writeFixtures(t, root)

	tests := []struct {
		format   string
		expected []string
		absent   []string
	}{
		{config.FormatJSON, []string{output.ManifestJSONFile, output.BadgeFile}, []string{output.ManifestTOMLFile}},
		{config.FormatTOML, []string{output.ManifestTOMLFile, output.BadgeFile}, []string{output.ManifestJSONFile}},
		{config.FormatAll, []string{output.ManifestJSONFile, output.ManifestTOMLFile, output.BadgeFile}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := t.TempDir()
			e := testEngine(t, root, out)
			e.cfg.Output.Format = tt.format

			_, err := e.Run()
			require.NoError(t, err)

			for _, name := range tt.expected {
				assert.FileExists(t, filepath.Join(out, name))
			}
			for _, name := range tt.absent {
				assert.NoFileExists(t, filepath.Join(out, name))
			}
		})
	}
}

func TestEngine_Run_Deterministic(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFixtures(t, root)
	e := testEngine(t, root, out)

	_, err := e.Run()
	require.NoError(t, err)
	first := readAll(t, out)

	_, err = e.Run()
	require.NoError(t, err)
	second := readAll(t, out)

	assert.Equal(t, first, second)
}

func TestEngine_ResolveVersion_Oracle(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFixtures(t, root)

	v, err := testEngine(t, root, out).ResolveVersion()

	require.NoError(t, err)
	assert.Equal(t, "2.0.1", v)
	// Oracle mode writes nothing.
	assert.NoFileExists(t, filepath.Join(out, output.ManifestJSONFile))
}

func TestNewEngine_ProjectFileOverride(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFixtures(t, root)

	pfPath := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(pfPath, []byte(`
project:
  name: Other-Lib
  description: another library
  platforms: [Linux]
  repository: https://example.com/other
  download: git clone https://example.com/other.git
`), 0644))

	cfg := config.Default()
	cfg.Inputs.Root = root
	cfg.Inputs.ProjectFile = pfPath
	cfg.Output.Directory = out

	log := utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json", Output: &bytes.Buffer{}})
	e, err := NewEngine(EngineOptions{Config: cfg, Logger: log})
	require.NoError(t, err)

	_, err = e.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, output.ManifestJSONFile))
	require.NoError(t, err)

	var m manifest.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Other-Lib", m.Project.Name)
	assert.Equal(t, []string{"Linux"}, m.Project.Platforms)
	// Baseline keeps its default when the override omits it.
	assert.Equal(t, "C++20 Standard Library", m.Dependencies[0].Name)
}

func TestNewEngine_MissingProjectFile(t *testing.T) {
	cfg := config.Default()
	cfg.Inputs.ProjectFile = filepath.Join(t.TempDir(), "absent.yaml")

	e, err := NewEngine(EngineOptions{Config: cfg})

	assert.Nil(t, e)
	assert.ErrorIs(t, err, config.ErrProjectFileNotFound)
}

func readAll(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string]string)
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		files[entry.Name()] = string(data)
	}
	return files
}
