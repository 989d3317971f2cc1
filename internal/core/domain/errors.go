package domain

import "go.trai.ch/zerr"

var (
	// ErrUnitAlreadyExists is returned when a build unit with the same name is added twice.
	ErrUnitAlreadyExists = zerr.New("build unit already exists")

	// ErrMissingDependency is returned when a build unit references a dependency that is not in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnitNotFound is returned when a requested build unit is not in the graph.
	ErrUnitNotFound = zerr.New("build unit not found")

	// ErrInvalidUnitName is returned when a build unit has an empty name.
	ErrInvalidUnitName = zerr.New("invalid build unit name")

	// ErrInvalidPlatform is returned when a platform identifier is not recognised.
	ErrInvalidPlatform = zerr.New("invalid platform")

	// ErrInvalidProduct is returned when a product identifier is not recognised.
	ErrInvalidProduct = zerr.New("invalid product")

	// ErrInvalidScriptOrder is returned when a build phase script order is neither pre nor post.
	ErrInvalidScriptOrder = zerr.New("invalid script order, expected 'pre' or 'post'")

	// ErrInvalidFileElement is returned when a resource declares neither a file nor a folder reference.
	ErrInvalidFileElement = zerr.New("invalid file element")

	// ErrFileReadFailed is returned when a declared source, resource, schema or script file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileNotFound is returned alongside ErrFileReadFailed when the file does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrEncodingFailed is returned when an intermediate structure cannot be turned into bytes.
	ErrEncodingFailed = zerr.New("failed to encode value")

	// ErrUnknownAlgorithm is returned when the configured hashing algorithm is not supported.
	ErrUnknownAlgorithm = zerr.New("unknown hashing algorithm")

	// ErrInputNotFound is returned when a declared glob or path matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrConfigReadFailed is returned when the project manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no project manifest exists in the working directory.
	ErrConfigNotFound = zerr.New("could not find xcache.yaml or xcache.toml")

	// ErrUnsupportedConfigFormat is returned for manifest extensions other than yaml, yml and toml.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format")

	// ErrStoreReadFailed is returned when the fingerprint store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint store")

	// ErrStoreDecodeFailed is returned when the fingerprint store cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode fingerprint store")

	// ErrStoreWriteFailed is returned when the fingerprint store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint store")

	// ErrStoreSchemaMismatch is returned when the store was written by an incompatible version.
	ErrStoreSchemaMismatch = zerr.New("fingerprint store schema mismatch")

	// ErrHashingFailed is returned by the app layer when computing fingerprints fails.
	ErrHashingFailed = zerr.New("content hashing failed")
)
