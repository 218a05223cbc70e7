// Package app wires the extraction pipeline together: read the listfiles,
// resolve the project version, correlate FetchContent declarations with
// usages, assemble the manifest model and write the requested artifacts.
// The pipeline is strictly linear and recomputes everything from scratch on
// every run.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/JeongHan-Bae/manifestgen/internal/cmake"
	"github.com/JeongHan-Bae/manifestgen/internal/config"
	"github.com/JeongHan-Bae/manifestgen/internal/manifest"
	"github.com/JeongHan-Bae/manifestgen/internal/output"
	"github.com/JeongHan-Bae/manifestgen/internal/utils"
)

// Engine runs the extract-and-serialize pipeline. All fixed manifest data
// (identity, baseline, badge styling, per-variant templates) is resolved at
// construction, so a run is a pure function of the listfile contents.
type Engine struct {
	cfg      *config.Config
	identity manifest.Identity
	baseline manifest.Dependency
	badge    manifest.BadgeStyle
	log      *utils.Logger
}

// EngineOptions contains options for creating an engine
type EngineOptions struct {
	Config *config.Config
	Logger *utils.Logger
}

// Result lists what one generation run produced.
type Result struct {
	Version string
	Paths   []string
}

// NewEngine creates an engine from the given configuration, applying the
// project override file when one is configured.
func NewEngine(opts EngineOptions) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}

	e := &Engine{
		cfg:      cfg,
		identity: config.DefaultIdentity(),
		baseline: config.DefaultBaseline(),
		badge:    config.DefaultBadgeStyle(),
		log:      log.WithComponent("engine"),
	}

	if cfg.Inputs.ProjectFile != "" {
		pf, err := config.LoadProjectFile(cfg.Inputs.ProjectFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load project file: %w", err)
		}
		e.applyOverride(pf)
	}

	return e, nil
}

func (e *Engine) applyOverride(pf *config.ProjectFile) {
	if pf.Project != nil {
		e.identity = *pf.Project
	}
	if pf.Baseline != nil {
		e.baseline = *pf.Baseline
	}
	if pf.Badge != nil {
		e.badge = *pf.Badge
	}
}

// ResolveVersion reads the root listfile and returns the project version.
// This is the whole of the version-oracle mode; nothing is written.
func (e *Engine) ResolveVersion() (string, error) {
	path := filepath.Join(e.cfg.Inputs.Root, e.cfg.Inputs.RootList)
	src, found, err := cmake.ReadSource(path)
	if err != nil {
		return "", err
	}
	if !found {
		e.log.Warn().Str("path", path).Msg("root listfile not found, version is unknown")
	}
	return cmake.ResolveVersion(src), nil
}

// Run executes one full generation pass and returns the resolved version
// together with the paths written. The badge is always written; the
// manifest renderings follow the configured format selector.
func (e *Engine) Run() (*Result, error) {
	version, err := e.ResolveVersion()
	if err != nil {
		return nil, err
	}

	testPath := filepath.Join(e.cfg.Inputs.Root, e.cfg.Inputs.TestList)
	testSrc, found, err := cmake.ReadSource(testPath)
	if err != nil {
		return nil, err
	}
	if !found {
		e.log.Warn().Str("path", testPath).Msg("test listfile not found, dependency listing is empty")
	}
	usages := cmake.CorrelateFetchContent(testSrc)
	e.log.Debug().Str("version", version).Int("usages", len(usages)).Msg("extraction complete")

	w := output.NewWriter(e.cfg.Output.Directory)
	res := &Result{Version: version}

	if e.cfg.Output.Format == config.FormatJSON || e.cfg.Output.Format == config.FormatAll {
		m := e.assemble(version, usages, config.JSONFetchTemplate())
		path, err := w.WriteManifestJSON(m)
		if err != nil {
			return nil, err
		}
		e.log.Info().Str("path", path).Msg("wrote JSON manifest")
		res.Paths = append(res.Paths, path)
	}

	if e.cfg.Output.Format == config.FormatTOML || e.cfg.Output.Format == config.FormatAll {
		m := e.assemble(version, usages, config.TOMLFetchTemplate())
		path, err := w.WriteManifestTOML(m)
		if err != nil {
			return nil, err
		}
		e.log.Info().Str("path", path).Msg("wrote TOML manifest")
		res.Paths = append(res.Paths, path)
	}

	path, err := w.WriteBadge(e.badge.Render(version))
	if err != nil {
		return nil, err
	}
	e.log.Info().Str("path", path).Msg("wrote version badge")
	res.Paths = append(res.Paths, path)

	return res, nil
}

// assemble turns correlated usages into dependency records under the given
// variant template and combines them with the fixed manifest data. Usage
// order is preserved.
func (e *Engine) assemble(version string, usages []cmake.Usage, tmpl manifest.FetchTemplate) *manifest.Manifest {
	deps := make([]manifest.Dependency, 0, len(usages))
	for _, u := range usages {
		deps = append(deps, tmpl.Record(u.Name, u.Repository, u.Tag))
	}
	return manifest.Assemble(version, e.identity, e.baseline, deps)
}
