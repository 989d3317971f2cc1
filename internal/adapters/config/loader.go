// Package config provides the project manifest loader for xcache.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphLoader = (*Loader)(nil)

// manifestNames are tried in order in every directory from cwd upwards.
var manifestNames = []string{domain.ManifestFileName, "xcache.yml", domain.TOMLManifestFileName}

// Loader implements ports.GraphLoader for YAML and TOML manifests.
type Loader struct {
	resolver ports.InputResolver
	logger   ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(resolver ports.InputResolver, logger ports.Logger) *Loader {
	return &Loader{resolver: resolver, logger: logger}
}

// Load finds the manifest in cwd or the closest parent directory and loads it.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, err := findManifest(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

// LoadFile reads the manifest at path. Globs are resolved against its directory.
func (l *Loader) LoadFile(path string) (*domain.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, configError(domain.ErrConfigReadFailed, err, path)
	}

	manifest, err := l.decode(abs)
	if err != nil {
		return nil, err
	}

	return l.build(filepath.Dir(abs), manifest)
}

func findManifest(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", configError(domain.ErrConfigReadFailed, err, cwd)
	}

	for {
		for _, name := range manifestNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", configError(domain.ErrConfigReadFailed, err, candidate)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Join(zerr.With(domain.ErrConfigNotFound, "cwd", cwd), domain.ErrConfigNotFound)
}

func (l *Loader) decode(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, configError(domain.ErrConfigReadFailed, err, path)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, configError(domain.ErrConfigParseFailed, err, path)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, configError(domain.ErrConfigParseFailed, err, path)
		}
		for _, key := range meta.Undecoded() {
			l.logger.Warn("ignoring unknown manifest key " + key.String())
		}
	default:
		return nil, errors.Join(
			zerr.With(domain.ErrUnsupportedConfigFormat, "path", path),
			domain.ErrUnsupportedConfigFormat,
		)
	}

	return &m, nil
}

func (l *Loader) build(root string, m *Manifest) (*domain.Project, error) {
	settings, err := buildSettings(m.Cache)
	if err != nil {
		return nil, err
	}

	g := domain.NewGraph()
	g.SetRoot(root)

	for i := range m.Units {
		dto := &m.Units[i]
		unit, err := l.buildUnit(root, dto)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid build unit"), "unit_name", dto.Name)
		}
		if err := g.AddUnit(unit); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &domain.Project{Graph: g, Settings: settings}, nil
}

func buildSettings(dto CacheDTO) (domain.CacheSettings, error) {
	settings := domain.DefaultCacheSettings()
	if dto.Algorithm != "" {
		settings.Algorithm = dto.Algorithm
	}
	if dto.Parallelism < 0 {
		return settings, errors.Join(
			zerr.With(domain.ErrConfigParseFailed, "parallelism", dto.Parallelism),
			domain.ErrConfigParseFailed,
		)
	}
	settings.Parallelism = dto.Parallelism
	if dto.Store != "" {
		settings.StorePath = filepath.FromSlash(dto.Store)
	}
	return settings, nil
}

func (l *Loader) buildUnit(root string, dto *UnitDTO) (*domain.BuildUnit, error) {
	platform, err := domain.ParsePlatform(dto.Platform)
	if err != nil {
		return nil, err
	}

	product, err := domain.ParseProduct(dto.Product)
	if err != nil {
		return nil, err
	}

	sources, err := l.resolveSources(root, dto.Sources)
	if err != nil {
		return nil, err
	}

	resources, err := l.resolveResources(root, dto.Resources)
	if err != nil {
		return nil, err
	}

	models, err := l.resolveCoreDataModels(root, dto.CoreDataModels)
	if err != nil {
		return nil, err
	}

	actions, err := buildActions(root, dto.Actions)
	if err != nil {
		return nil, err
	}

	return &domain.BuildUnit{
		Name:           domain.NewInternedString(dto.Name),
		Platform:       platform,
		Product:        product,
		BundleID:       dto.BundleID,
		ProductName:    dto.ProductName,
		Sources:        sources,
		Resources:      resources,
		CoreDataModels: models,
		Actions:        actions,
		Dependencies:   domain.InternStrings(dto.Dependencies),
	}, nil
}

// resolveSources expands every glob. Directories are skipped and a file matched
// by several globs keeps the flags of the first.
func (l *Loader) resolveSources(root string, dtos []SourceDTO) ([]domain.SourceFile, error) {
	seen := make(map[string]bool)
	var sources []domain.SourceFile
	for _, dto := range dtos {
		matches, err := l.resolver.ResolveInputs([]string{dto.Path}, root)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] || isDir(match) {
				continue
			}
			seen[match] = true
			sources = append(sources, domain.SourceFile{Path: match, CompilerFlags: dto.CompilerFlags})
		}
	}
	return sources, nil
}

// resolveResources keeps declaration order. A glob match that is a directory
// becomes a folder reference.
func (l *Loader) resolveResources(root string, dtos []ResourceDTO) ([]domain.FileElement, error) {
	seen := make(map[string]bool)
	var resources []domain.FileElement
	add := func(el domain.FileElement) {
		if !seen[el.Path] {
			seen[el.Path] = true
			resources = append(resources, el)
		}
	}

	for _, dto := range dtos {
		switch {
		case dto.Path != "" && dto.Folder != "", dto.Path == "" && dto.Folder == "":
			return nil, errors.Join(
				zerr.With(zerr.With(domain.ErrInvalidFileElement, "path", dto.Path), "folder", dto.Folder),
				domain.ErrInvalidFileElement,
			)
		case dto.Folder != "":
			add(domain.NewFolderReference(absolute(root, dto.Folder)))
		default:
			matches, err := l.resolver.ResolveInputs([]string{dto.Path}, root)
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				if isDir(match) {
					add(domain.NewFolderReference(match))
				} else {
					add(domain.NewFile(match))
				}
			}
		}
	}
	return resources, nil
}

// resolveCoreDataModels expands model bundles such as Model.xcdatamodeld into
// the files they contain, in lexical order.
func (l *Loader) resolveCoreDataModels(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	matches, err := l.resolver.ResolveInputs(patterns, root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, match := range matches {
		if !isDir(match) {
			files = append(files, match)
			continue
		}
		contents, err := l.resolver.ResolveInputs([]string{filepath.Join(match, "**")}, root)
		if err != nil {
			return nil, err
		}
		files = append(files, contents...)
	}
	return files, nil
}

// buildActions resolves the script path only. Input and output paths stay as
// declared so the fingerprint does not depend on the checkout location.
func buildActions(root string, dtos []ActionDTO) ([]domain.BuildPhaseScript, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	actions := make([]domain.BuildPhaseScript, 0, len(dtos))
	for _, dto := range dtos {
		order, err := domain.ParseScriptOrder(dto.Order)
		if err != nil {
			return nil, err
		}

		var path string
		if dto.Path != "" {
			path = absolute(root, dto.Path)
		}

		actions = append(actions, domain.BuildPhaseScript{
			Name:                dto.Name,
			Tool:                dto.Tool,
			Path:                path,
			Order:               order,
			Arguments:           dto.Arguments,
			InputPaths:          dto.InputPaths,
			OutputPaths:         dto.OutputPaths,
			OutputFileListPaths: dto.OutputFileListPaths,
		})
	}
	return actions, nil
}

func absolute(root, path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// configError joins the sentinel with the cause and the manifest path.
func configError(sentinel, err error, path string) error {
	return errors.Join(zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path), sentinel)
}
