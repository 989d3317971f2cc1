package domain

import (
	"maps"
	"slices"
	"time"
)

// Digest is a lowercase hex encoded content hash.
type Digest string

// String returns the hex form of the digest.
func (d Digest) String() string {
	return string(d)
}

// Short returns the first 12 characters, for display.
func (d Digest) Short() string {
	if len(d) <= 12 {
		return string(d)
	}
	return string(d[:12])
}

// Fingerprints maps a build unit name to its content hash.
// It is the cache key namespace consumed by artifact storage.
type Fingerprints map[string]Digest

// NewFingerprints builds the mapping once from completed pairs.
func NewFingerprints(pairs []UnitDigest) Fingerprints {
	fp := make(Fingerprints, len(pairs))
	for _, p := range pairs {
		fp[p.Unit] = p.Digest
	}
	return fp
}

// Names returns the unit names in ascending order.
func (f Fingerprints) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// UnitDigest pairs a unit name with its digest.
type UnitDigest struct {
	Unit   string
	Digest Digest
}

// FingerprintRecord is the persisted fingerprint of a unit.
type FingerprintRecord struct {
	Unit      string    `msgpack:"unit"`
	Digest    Digest    `msgpack:"digest"`
	Algorithm string    `msgpack:"algorithm"`
	Timestamp time.Time `msgpack:"timestamp,omitempty"`
}

// ChangeStatus describes how a fingerprint compares with the stored one.
type ChangeStatus string

const (
	// ChangeStatusNew means no fingerprint was stored for the unit.
	ChangeStatusNew ChangeStatus = "new"
	// ChangeStatusChanged means the stored fingerprint differs.
	ChangeStatusChanged ChangeStatus = "changed"
	// ChangeStatusUnchanged means the cached artifact can be reused.
	ChangeStatusUnchanged ChangeStatus = "unchanged"
)

// UnitChange is one line of the fingerprint report.
type UnitChange struct {
	Unit     string
	Digest   Digest
	Previous Digest
	Status   ChangeStatus
}

// CompareFingerprints classifies each fingerprint against the previous records.
// Records written with a different algorithm count as changed.
// The result is ordered by unit name.
func CompareFingerprints(current Fingerprints, previous map[string]FingerprintRecord, algorithm string) []UnitChange {
	changes := make([]UnitChange, 0, len(current))
	for _, name := range current.Names() {
		change := UnitChange{Unit: name, Digest: current[name], Status: ChangeStatusNew}
		if rec, ok := previous[name]; ok {
			change.Previous = rec.Digest
			if rec.Digest == change.Digest && rec.Algorithm == algorithm {
				change.Status = ChangeStatusUnchanged
			} else {
				change.Status = ChangeStatusChanged
			}
		}
		changes = append(changes, change)
	}
	return changes
}
