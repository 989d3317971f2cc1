package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcache/internal/core/domain"
)

func TestNewFingerprints(t *testing.T) {
	fp := domain.NewFingerprints([]domain.UnitDigest{
		{Unit: "UI", Digest: "03"},
		{Unit: "Core", Digest: "01"},
	})

	assert.Equal(t, []string{"Core", "UI"}, fp.Names())
	assert.Equal(t, domain.Digest("01"), fp["Core"])
}

func TestDigest_Short(t *testing.T) {
	assert.Equal(t, "0123456789ab", domain.Digest("0123456789abcdef").Short())
	assert.Equal(t, "abc", domain.Digest("abc").Short())
}

func TestCompareFingerprints(t *testing.T) {
	current := domain.Fingerprints{
		"Core":    "aaaa",
		"Feature": "bbbb",
		"UI":      "cccc",
		"Legacy":  "dddd",
	}
	previous := map[string]domain.FingerprintRecord{
		"Core":    {Unit: "Core", Digest: "aaaa", Algorithm: "xxhash64"},
		"Feature": {Unit: "Feature", Digest: "0000", Algorithm: "xxhash64"},
		"Legacy":  {Unit: "Legacy", Digest: "dddd", Algorithm: "sha256"},
	}

	got := domain.CompareFingerprints(current, previous, "xxhash64")

	want := []domain.UnitChange{
		{Unit: "Core", Digest: "aaaa", Previous: "aaaa", Status: domain.ChangeStatusUnchanged},
		{Unit: "Feature", Digest: "bbbb", Previous: "0000", Status: domain.ChangeStatusChanged},
		{Unit: "Legacy", Digest: "dddd", Previous: "dddd", Status: domain.ChangeStatusChanged},
		{Unit: "UI", Digest: "cccc", Status: domain.ChangeStatusNew},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CompareFingerprints mismatch (-want +got):\n%s", diff)
	}
}
