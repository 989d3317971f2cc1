package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/xcache/internal/adapters/cas"
	"go.trai.ch/xcache/internal/core/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".xcache", "fingerprints.msgpack.zst")
	store := cas.NewStore()

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := map[string]domain.FingerprintRecord{
		"Core":    {Unit: "Core", Digest: "0123456789abcdef", Algorithm: "xxhash64", Timestamp: ts},
		"Network": {Unit: "Network", Digest: "fedcba9876543210", Algorithm: "xxhash64", Timestamp: ts},
	}

	require.NoError(t, store.Save(storePath, records))

	got, err := cas.NewStore().Load(storePath)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Digest("0123456789abcdef"), got["Core"].Digest)
	assert.Equal(t, "xxhash64", got["Network"].Algorithm)
	assert.True(t, ts.Equal(got["Core"].Timestamp))

	entries, err := os.ReadDir(filepath.Dir(storePath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are renamed away")
}

func TestStore_SaveReplaces(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "fp")
	store := cas.NewStore()

	require.NoError(t, store.Save(storePath, map[string]domain.FingerprintRecord{
		"Old": {Unit: "Old", Digest: "1"},
	}))
	require.NoError(t, store.Save(storePath, map[string]domain.FingerprintRecord{
		"New": {Unit: "New", Digest: "2"},
	}))

	got, err := store.Load(storePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, keys(got))
}

func TestStore_LoadMissing(t *testing.T) {
	got, err := cas.NewStore().Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "fp")
	require.NoError(t, os.WriteFile(storePath, nil, domain.PrivateFilePerm))

	got, err := cas.NewStore().Load(storePath)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_LoadCorrupted(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "fp")
	require.NoError(t, os.WriteFile(storePath, []byte("not zstd"), domain.PrivateFilePerm))

	_, err := cas.NewStore().Load(storePath)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreDecodeFailed)
}

func TestStore_LoadSchemaMismatch(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "fp")

	raw, err := msgpack.Marshal(map[string]any{"schema": 99, "records": []any{}})
	require.NoError(t, err)
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	data := enc.EncodeAll(raw, nil)
	require.NoError(t, enc.Close())
	require.NoError(t, os.WriteFile(storePath, data, domain.PrivateFilePerm))

	_, err = cas.NewStore().Load(storePath)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreSchemaMismatch)
}

func TestStore_LoadUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := cas.NewStore().Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestStore_Remove(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "fp")
	store := cas.NewStore()

	require.NoError(t, store.Save(storePath, map[string]domain.FingerprintRecord{
		"Core": {Unit: "Core", Digest: "1"},
	}))
	require.NoError(t, store.Remove(storePath))

	_, err := os.Stat(storePath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.NoError(t, store.Remove(storePath), "removing a missing store is not an error")
}

func keys(m map[string]domain.FingerprintRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
