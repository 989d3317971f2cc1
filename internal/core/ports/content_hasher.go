// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/xcache/internal/core/domain"

// ContentHasher computes digests of strings, ordered string lists and file contents.
// Implementations are pure functions of their input and must be stable across runs and machines.
//
//go:generate go run go.uber.org/mock/mockgen -source=content_hasher.go -destination=mocks/mock_content_hasher.go -package=mocks
type ContentHasher interface {
	// Algorithm returns the name of the digest strategy.
	Algorithm() string

	// HashString returns the digest of the UTF-8 bytes of s.
	HashString(s string) domain.Digest

	// HashStrings returns the digest of an ordered list of strings.
	// Elements are framed so that ["ab", "c"] and ["a", "bc"] differ.
	HashStrings(parts []string) domain.Digest

	// HashFile returns the digest of the file content at path.
	HashFile(path string) (domain.Digest, error)

	// HashFolder returns the digest of every file below path, including relative paths.
	HashFolder(path string) (domain.Digest, error)
}

// ContentHasherFactory builds a ContentHasher for a named algorithm.
type ContentHasherFactory interface {
	// NewContentHasher returns a hasher using the given algorithm.
	// The empty string selects the default algorithm.
	NewContentHasher(algorithm string) (ContentHasher, error)
}
