package config

import (
	"fmt"

	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifest represents the structure of the xcache.yaml or xcache.toml file.
type Manifest struct {
	Version string    `yaml:"version" toml:"version"`
	Cache   CacheDTO  `yaml:"cache" toml:"cache"`
	Units   []UnitDTO `yaml:"units" toml:"units"`
}

// CacheDTO represents the cache section of the manifest.
type CacheDTO struct {
	Algorithm   string `yaml:"algorithm" toml:"algorithm"`
	Parallelism int    `yaml:"parallelism" toml:"parallelism"`
	Store       string `yaml:"store" toml:"store"`
}

// UnitDTO represents a build unit definition in the manifest.
type UnitDTO struct {
	Name           string        `yaml:"name" toml:"name"`
	Platform       string        `yaml:"platform" toml:"platform"`
	Product        string        `yaml:"product" toml:"product"`
	BundleID       string        `yaml:"bundleId" toml:"bundleId"`
	ProductName    string        `yaml:"productName" toml:"productName"`
	Dependencies   []string      `yaml:"dependencies" toml:"dependencies"`
	Sources        []SourceDTO   `yaml:"sources" toml:"sources"`
	Resources      []ResourceDTO `yaml:"resources" toml:"resources"`
	CoreDataModels []string      `yaml:"coreDataModels" toml:"coreDataModels"`
	Actions        []ActionDTO   `yaml:"actions" toml:"actions"`
}

// SourceDTO is a source glob with optional per-file compiler flags.
// A plain string is accepted as a glob without flags.
type SourceDTO struct {
	Path          string `yaml:"path" toml:"path"`
	CompilerFlags string `yaml:"compilerFlags" toml:"compilerFlags"`
}

// ResourceDTO is either a file glob (path) or a folder reference (folder).
// A plain string is accepted as a file glob.
type ResourceDTO struct {
	Path   string `yaml:"path" toml:"path"`
	Folder string `yaml:"folder" toml:"folder"`
}

// ActionDTO represents a build phase script.
type ActionDTO struct {
	Name                string   `yaml:"name" toml:"name"`
	Tool                string   `yaml:"tool" toml:"tool"`
	Path                string   `yaml:"path" toml:"path"`
	Order               string   `yaml:"order" toml:"order"`
	Arguments           []string `yaml:"arguments" toml:"arguments"`
	InputPaths          []string `yaml:"inputPaths" toml:"inputPaths"`
	OutputPaths         []string `yaml:"outputPaths" toml:"outputPaths"`
	OutputFileListPaths []string `yaml:"outputFileListPaths" toml:"outputFileListPaths"`
}

// UnmarshalYAML accepts either a scalar glob or a mapping.
func (s *SourceDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Path = value.Value
		return nil
	}
	type plain SourceDTO
	return value.Decode((*plain)(s))
}

// UnmarshalTOML accepts either a string glob or an inline table.
func (s *SourceDTO) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		s.Path = v
	case map[string]any:
		var err error
		if s.Path, err = tomlString(v, "path"); err != nil {
			return err
		}
		if s.CompilerFlags, err = tomlString(v, "compilerFlags"); err != nil {
			return err
		}
	default:
		return zerr.With(domain.ErrConfigParseFailed, "source", fmt.Sprint(v))
	}
	return nil
}

// UnmarshalYAML accepts either a scalar glob or a mapping.
func (r *ResourceDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.Path = value.Value
		return nil
	}
	type plain ResourceDTO
	return value.Decode((*plain)(r))
}

// UnmarshalTOML accepts either a string glob or an inline table.
func (r *ResourceDTO) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		r.Path = v
	case map[string]any:
		var err error
		if r.Path, err = tomlString(v, "path"); err != nil {
			return err
		}
		if r.Folder, err = tomlString(v, "folder"); err != nil {
			return err
		}
	default:
		return zerr.With(domain.ErrConfigParseFailed, "resource", fmt.Sprint(v))
	}
	return nil
}

func tomlString(table map[string]any, key string) (string, error) {
	raw, ok := table[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", zerr.With(domain.ErrConfigParseFailed, key, fmt.Sprint(raw))
	}
	return s, nil
}
