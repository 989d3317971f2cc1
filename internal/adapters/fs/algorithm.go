package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Algorithm is a seedless digest strategy.
// Every algorithm is deterministic across processes, platforms and architectures.
type Algorithm struct {
	name      string
	newDigest func() digest
}

type digest interface {
	io.Writer
	hexSum() string
}

var (
	// XXHash64 is the default 64-bit xxHash.
	XXHash64 = Algorithm{name: "xxhash64", newDigest: func() digest { return xxhashDigest{xxhash.New()} }}
	// XXH3 is the 128-bit XXH3 variant, for graphs large enough to worry about 64-bit collisions.
	XXH3 = Algorithm{name: "xxh3-128", newDigest: func() digest { return xxh3Digest{xxh3.New()} }}
	// SHA256 is the cryptographic option.
	SHA256 = Algorithm{name: "sha256", newDigest: func() digest { return stdDigest{sha256.New()} }}
)

var algorithms = []Algorithm{XXHash64, XXH3, SHA256}

// Name returns the configuration name of the algorithm.
func (a Algorithm) Name() string {
	return a.name
}

// ParseAlgorithm looks up an algorithm by name. The empty string selects XXHash64.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return XXHash64, nil
	}
	for _, a := range algorithms {
		if a.name == name {
			return a, nil
		}
	}
	return Algorithm{}, zerr.With(domain.ErrUnknownAlgorithm, "algorithm", name)
}

// AlgorithmNames lists the supported algorithm names, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.name)
	}
	slices.Sort(names)
	return names
}

type xxhashDigest struct {
	*xxhash.Digest
}

func (d xxhashDigest) hexSum() string {
	return fmt.Sprintf("%016x", d.Sum64())
}

type xxh3Digest struct {
	h *xxh3.Hasher
}

func (d xxh3Digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

func (d xxh3Digest) hexSum() string {
	sum := d.h.Sum128().Bytes()
	return hex.EncodeToString(sum[:])
}

type stdDigest struct {
	hash.Hash
}

func (d stdDigest) hexSum() string {
	return hex.EncodeToString(d.Sum(nil))
}
