package fs_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcache/internal/adapters/fs"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestContentHasher_HashString(t *testing.T) {
	hasher := fs.NewContentHasher(fs.NewWalker())

	got := hasher.HashString("hello")
	assert.Equal(t, domain.Digest(fmt.Sprintf("%016x", xxhash.Sum64String("hello"))), got)
	assert.Equal(t, got, hasher.HashString("hello"))
	assert.NotEqual(t, got, hasher.HashString("hellp"))
	assert.Equal(t, "xxhash64", hasher.Algorithm())
}

func TestContentHasher_HashStrings_Framing(t *testing.T) {
	hasher := fs.NewContentHasher(fs.NewWalker())

	tests := []struct {
		name string
		a, b []string
	}{
		{"element boundary", []string{"ab", "c"}, []string{"a", "bc"}},
		{"empty element", []string{"a", ""}, []string{"a"}},
		{"empty list vs empty string", nil, []string{""}},
		{"order", []string{"a", "b"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, hasher.HashStrings(tt.a), hasher.HashStrings(tt.b))
		})
	}

	assert.NotEqual(t, hasher.HashString("abc"), hasher.HashStrings([]string{"abc"}),
		"list hashing is not plain concatenation")
	assert.Equal(t, hasher.HashStrings([]string{"x", "y"}), hasher.HashStrings([]string{"x", "y"}))
}

func TestContentHasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.swift")
	writeFile(t, path, "let a = 1")

	hasher := fs.NewContentHasher(fs.NewWalker())

	got, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, hasher.HashString("let a = 1"), got, "file digest equals digest of its bytes")

	require.NoError(t, os.WriteFile(path, []byte("let a = 2"), domain.PrivateFilePerm))
	changed, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, got, changed)
}

func TestContentHasher_HashFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.swift")
	hasher := fs.NewContentHasher(fs.NewWalker())

	_, err := hasher.HashFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileReadFailed)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestContentHasher_HashFolder(t *testing.T) {
	tmpDir := t.TempDir()
	folder := filepath.Join(tmpDir, "Assets.bundle")
	writeFile(t, filepath.Join(folder, "a.png"), "png")
	writeFile(t, filepath.Join(folder, "nested", "b.json"), "{}")

	hasher := fs.NewContentHasher(fs.NewWalker())

	first, err := hasher.HashFolder(folder)
	require.NoError(t, err)

	// Finder metadata does not affect the digest.
	writeFile(t, filepath.Join(folder, ".DS_Store"), "junk")
	second, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Renaming a file does.
	require.NoError(t, os.Rename(filepath.Join(folder, "a.png"), filepath.Join(folder, "c.png")))
	renamed, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.NotEqual(t, first, renamed)

	// So does content.
	writeFile(t, filepath.Join(folder, "nested", "b.json"), "{\"k\":1}")
	edited, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.NotEqual(t, renamed, edited)
}

func TestContentHasher_HashFolder_SymlinkedDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	folder := filepath.Join(tmpDir, "Assets")
	writeFile(t, filepath.Join(folder, "a.png"), "png")
	writeFile(t, filepath.Join(tmpDir, "Real", "b.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "Other", "c.json"), "[]")
	link := filepath.Join(folder, "linked")
	require.NoError(t, os.Symlink(filepath.Join("..", "Real"), link))

	hasher := fs.NewContentHasher(fs.NewWalker())

	first, err := hasher.HashFolder(folder)
	require.NoError(t, err)

	// The link target is hashed, not the linked directory's content.
	writeFile(t, filepath.Join(tmpDir, "Real", "b.json"), "{\"k\":1}")
	second, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.Remove(link))
	require.NoError(t, os.Symlink(filepath.Join("..", "Other"), link))
	retargeted, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.NotEqual(t, first, retargeted)
}

func TestContentHasher_HashFolder_SymlinkedFile(t *testing.T) {
	tmpDir := t.TempDir()
	folder := filepath.Join(tmpDir, "Assets")
	writeFile(t, filepath.Join(tmpDir, "shared.json"), "{}")
	require.NoError(t, os.MkdirAll(folder, domain.DirPerm))
	require.NoError(t, os.Symlink(filepath.Join("..", "shared.json"), filepath.Join(folder, "shared.json")))

	hasher := fs.NewContentHasher(fs.NewWalker())

	first, err := hasher.HashFolder(folder)
	require.NoError(t, err)

	// File links are followed, so their content counts.
	writeFile(t, filepath.Join(tmpDir, "shared.json"), "[]")
	second, err := hasher.HashFolder(folder)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestContentHasher_HashFolder_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	writeFile(t, file, "not a folder")

	hasher := fs.NewContentHasher(fs.NewWalker())

	_, err := hasher.HashFolder(file)
	assert.ErrorIs(t, err, domain.ErrFileReadFailed)

	_, err = hasher.HashFolder(filepath.Join(tmpDir, "missing"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestContentHasherFactory_NewContentHasher(t *testing.T) {
	factory := fs.NewContentHasherFactory(fs.NewWalker())

	t.Run("default", func(t *testing.T) {
		hasher, err := factory.NewContentHasher("")
		require.NoError(t, err)
		assert.Equal(t, "xxhash64", hasher.Algorithm())
	})

	t.Run("sha256", func(t *testing.T) {
		hasher, err := factory.NewContentHasher("sha256")
		require.NoError(t, err)
		sum := sha256.Sum256([]byte("hello"))
		assert.Equal(t, domain.Digest(hex.EncodeToString(sum[:])), hasher.HashString("hello"))
	})

	t.Run("xxh3", func(t *testing.T) {
		hasher, err := factory.NewContentHasher("xxh3-128")
		require.NoError(t, err)
		assert.Len(t, hasher.HashString("hello").String(), 32)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := factory.NewContentHasher("md5")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownAlgorithm.Error())
	})
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, []string{"sha256", "xxh3-128", "xxhash64"}, fs.AlgorithmNames())
}
