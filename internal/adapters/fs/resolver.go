package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

const doubleStar = "**"

// Resolver implements ports.InputResolver with doublestar globs, where "**"
// matches any number of directories.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves patterns relative to root into absolute paths.
// Patterns are expanded in declaration order; matches of a single pattern are sorted.
// A path already produced by an earlier pattern is not repeated.
// A pattern that matches nothing is an error.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}

		matches, err := r.glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", path)
		}

		slices.Sort(matches)
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	return result, nil
}

// glob expands pattern. Wildcard matches drop VCS directories and the names the
// walker ignores inside folders; "**" patterns match files only.
func (r *Resolver) glob(pattern string) ([]string, error) {
	slashed := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashed) {
		return nil, doublestar.ErrBadPattern
	}

	var opts []doublestar.GlobOption
	if strings.Contains(slashed, doubleStar) {
		opts = append(opts, doublestar.WithFilesOnly())
	}

	matches, err := doublestar.FilepathGlob(pattern, opts...)
	if err != nil {
		return nil, err
	}

	base, rest := doublestar.SplitPattern(slashed)
	if !strings.ContainsAny(rest, "*?[{") {
		return matches, nil
	}

	base = filepath.FromSlash(base)
	return slices.DeleteFunc(matches, func(match string) bool {
		return ignoredMatch(base, match)
	}), nil
}

// ignoredMatch reports whether match, found below base, lies in a VCS directory
// or is a file the walker ignores inside folders.
func ignoredMatch(base, match string) bool {
	rel, err := filepath.Rel(base, match)
	if err != nil {
		return false
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for _, segment := range segments[:len(segments)-1] {
		if slices.Contains(vcsDirs, segment) {
			return true
		}
	}
	name := segments[len(segments)-1]
	return slices.Contains(vcsDirs, name) || matchesAny(folderIgnores, name)
}
