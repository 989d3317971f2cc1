package domain

// DefaultAlgorithm is the hashing algorithm used when none is configured.
const DefaultAlgorithm = "xxhash64"

// CacheSettings configures how fingerprints are computed and where they are kept.
type CacheSettings struct {
	// Algorithm names the digest strategy, see fs.ParseAlgorithm.
	Algorithm string
	// Parallelism bounds the number of units hashed at once. Zero means one per CPU.
	Parallelism int
	// StorePath is the fingerprint store file, relative to the project root unless absolute.
	StorePath string
}

// DefaultCacheSettings returns the settings used for an empty cache section.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		Algorithm: DefaultAlgorithm,
		StorePath: DefaultStorePath(),
	}
}

// Project is a loaded manifest: the unit graph plus its cache settings.
type Project struct {
	Graph    *Graph
	Settings CacheSettings
}
