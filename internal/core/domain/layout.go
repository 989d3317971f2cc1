package domain

import "path/filepath"

const (
	// XcacheDirName is the name of the internal workspace directory.
	XcacheDirName = ".xcache"

	// FingerprintsFileName is the name of the fingerprint store file.
	FingerprintsFileName = "fingerprints.msgpack.zst"

	// ManifestFileName is the default project manifest.
	ManifestFileName = "xcache.yaml"

	// TOMLManifestFileName is the alternative TOML project manifest.
	TOMLManifestFileName = "xcache.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStorePath returns the default fingerprint store location relative to the project root.
func DefaultStorePath() string {
	return filepath.Join(XcacheDirName, FingerprintsFileName)
}
