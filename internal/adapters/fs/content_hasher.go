package fs

import (
	"encoding/binary"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ContentHasher        = (*ContentHasher)(nil)
	_ ports.ContentHasherFactory = (*ContentHasherFactory)(nil)
)

// folderIgnores are skipped inside folder references.
var folderIgnores = []string{".DS_Store"}

// ContentHasher implements ports.ContentHasher on top of a swappable Algorithm.
type ContentHasher struct {
	algorithm Algorithm
	walker    *Walker
}

// NewContentHasher creates a ContentHasher using the default algorithm.
func NewContentHasher(walker *Walker) *ContentHasher {
	return NewContentHasherWithAlgorithm(walker, XXHash64)
}

// NewContentHasherWithAlgorithm creates a ContentHasher using the given algorithm.
func NewContentHasherWithAlgorithm(walker *Walker, algorithm Algorithm) *ContentHasher {
	return &ContentHasher{algorithm: algorithm, walker: walker}
}

// Algorithm returns the name of the digest strategy.
func (h *ContentHasher) Algorithm() string {
	return h.algorithm.Name()
}

// HashString returns the digest of the UTF-8 bytes of s.
func (h *ContentHasher) HashString(s string) domain.Digest {
	d := h.algorithm.newDigest()
	_, _ = io.WriteString(d, s)
	return domain.Digest(d.hexSum())
}

// HashStrings returns the digest of an ordered list of strings.
// The element count and every element length are written as uvarints ahead of the bytes,
// so no two different lists share an encoding.
func (h *ContentHasher) HashStrings(parts []string) domain.Digest {
	d := h.algorithm.newDigest()
	var buf [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(buf[:], uint64(len(parts)))
	_, _ = d.Write(buf[:n])
	for _, p := range parts {
		n = binary.PutUvarint(buf[:], uint64(len(p)))
		_, _ = d.Write(buf[:n])
		_, _ = io.WriteString(d, p)
	}

	return domain.Digest(d.hexSum())
}

// HashFile streams the file at path through the digest.
func (h *ContentHasher) HashFile(path string) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the resolved unit graph
	if err != nil {
		return "", fileReadError(err, path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	d := h.algorithm.newDigest()
	if _, err := io.Copy(d, f); err != nil {
		return "", fileReadError(err, path)
	}

	return domain.Digest(d.hexSum()), nil
}

// HashFolder folds the slash-separated relative path and content digest of every file
// below path, in lexical walk order.
func (h *ContentHasher) HashFolder(path string) (domain.Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fileReadError(err, path)
	}
	if !info.IsDir() {
		return "", fileReadError(errNotDirectory, path)
	}

	var parts []string
	for file, walkErr := range h.walker.WalkFiles(path, folderIgnores) {
		if walkErr != nil {
			return "", fileReadError(walkErr, file)
		}

		rel, err := filepath.Rel(path, file)
		if err != nil {
			return "", fileReadError(err, file)
		}

		contentHash, err := h.hashFolderEntry(file)
		if err != nil {
			return "", err
		}
		parts = append(parts, filepath.ToSlash(rel), contentHash.String())
	}

	return h.HashStrings(parts), nil
}

// hashFolderEntry hashes a file below a folder reference. A symlink to a
// directory contributes its link target instead of being descended into.
func (h *ContentHasher) hashFolderEntry(path string) (domain.Digest, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", fileReadError(err, path)
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		return h.HashFile(path)
	}

	target, err := os.Stat(path)
	if err != nil {
		return "", fileReadError(err, path)
	}
	if !target.IsDir() {
		return h.HashFile(path)
	}

	link, err := os.Readlink(path)
	if err != nil {
		return "", fileReadError(err, path)
	}
	return h.HashString(filepath.ToSlash(link)), nil
}

var errNotDirectory = errors.New("folder reference is not a directory")

// fileReadError joins the read sentinel with the cause and the offending path.
func fileReadError(err error, path string) error {
	cause := zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	if errors.Is(err, iofs.ErrNotExist) {
		return errors.Join(cause, domain.ErrFileReadFailed, domain.ErrFileNotFound)
	}
	return errors.Join(cause, domain.ErrFileReadFailed)
}

// ContentHasherFactory builds ContentHashers sharing one Walker.
type ContentHasherFactory struct {
	walker *Walker
}

// NewContentHasherFactory creates a ContentHasherFactory.
func NewContentHasherFactory(walker *Walker) *ContentHasherFactory {
	return &ContentHasherFactory{walker: walker}
}

// NewContentHasher returns a hasher for the named algorithm.
func (f *ContentHasherFactory) NewContentHasher(algorithm string) (ports.ContentHasher, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return NewContentHasherWithAlgorithm(f.walker, alg), nil
}
