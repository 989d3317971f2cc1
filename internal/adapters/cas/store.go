// Package cas implements the on-disk fingerprint store.
package cas

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// storeSchemaVersion is bumped whenever the persisted layout changes.
const storeSchemaVersion uint16 = 1

var _ ports.FingerprintStore = (*Store)(nil)

// storeFile is the msgpack document written to disk, zstd compressed.
type storeFile struct {
	Schema  uint16                     `msgpack:"schema"`
	Records []domain.FingerprintRecord `msgpack:"records"`
}

// Store implements ports.FingerprintStore using a zstd compressed msgpack file.
// Writes go through a temporary file and an atomic rename.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the records stored at path.
func (s *Store) Load(path string) (map[string]domain.FingerprintRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path = filepath.Clean(path)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.FingerprintRecord{}, nil
		}
		return nil, storeError(domain.ErrStoreReadFailed, err, path)
	}

	if len(data) == 0 {
		return map[string]domain.FingerprintRecord{}, nil
	}

	raw, err := decompress(data)
	if err != nil {
		return nil, storeError(domain.ErrStoreDecodeFailed, err, path)
	}

	var file storeFile
	if err := msgpack.Unmarshal(raw, &file); err != nil {
		return nil, storeError(domain.ErrStoreDecodeFailed, err, path)
	}

	if file.Schema != storeSchemaVersion {
		return nil, errors.Join(
			zerr.With(zerr.With(domain.ErrStoreSchemaMismatch, "path", path), "schema", file.Schema),
			domain.ErrStoreSchemaMismatch,
		)
	}

	records := make(map[string]domain.FingerprintRecord, len(file.Records))
	for _, rec := range file.Records {
		records[rec.Unit] = rec
	}
	return records, nil
}

// Save replaces the records stored at path.
func (s *Store) Save(path string, records map[string]domain.FingerprintRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)

	file := storeFile{
		Schema:  storeSchemaVersion,
		Records: make([]domain.FingerprintRecord, 0, len(records)),
	}
	for _, rec := range records {
		file.Records = append(file.Records, rec)
	}
	slices.SortFunc(file.Records, func(a, b domain.FingerprintRecord) int {
		return cmp.Compare(a.Unit, b.Unit)
	})

	raw, err := msgpack.Marshal(&file)
	if err != nil {
		return storeError(domain.ErrEncodingFailed, err, path)
	}

	data, err := compress(raw)
	if err != nil {
		return storeError(domain.ErrEncodingFailed, err, path)
	}

	if err := writeAtomic(path, data); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}
	return nil
}

// Remove deletes the store at path.
func (s *Store) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, domain.FilePerm); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// storeError joins the sentinel with the cause and the store path.
func storeError(sentinel, err error, path string) error {
	return errors.Join(zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path), sentinel)
}
