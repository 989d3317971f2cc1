package contenthash_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports/mocks"
	"go.trai.ch/xcache/internal/engine/contenthash"
	"go.uber.org/mock/gomock"
)

func TestCoreDataModelsContentHasher_PreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)

	gomock.InOrder(
		hasher.EXPECT().HashFile("/m/B.xcdatamodeld").Return(domain.Digest("b"), nil),
		hasher.EXPECT().HashFile("/m/A.xcdatamodeld").Return(domain.Digest("a"), nil),
		hasher.EXPECT().HashStrings([]string{"b", "a"}).Return(domain.Digest("ba")),
	)

	got, err := contenthash.NewCoreDataModelsContentHasher(hasher).Hash([]string{"/m/B.xcdatamodeld", "/m/A.xcdatamodeld"})
	require.NoError(t, err)
	assert.Equal(t, domain.Digest("ba"), got)
}

func TestCoreDataModelsContentHasher_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)

	readErr := errors.New("permission denied")
	hasher.EXPECT().HashFile("/m/A.xcdatamodeld").Return(domain.Digest(""), readErr)

	_, err := contenthash.NewCoreDataModelsContentHasher(hasher).Hash([]string{"/m/A.xcdatamodeld", "/m/B.xcdatamodeld"})
	assert.ErrorIs(t, err, readErr)
}

func TestGraphContentHasher_FoldOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)

	unit := &domain.BuildUnit{
		Name:        domain.NewInternedString("Core"),
		Platform:    domain.PlatformIOS,
		Product:     domain.ProductFramework,
		BundleID:    "io.xcache.core",
		ProductName: "Core",
		Sources: []domain.SourceFile{
			{Path: "/src/b.swift", CompilerFlags: "-O"},
			{Path: "/src/a.swift"},
		},
	}

	gomock.InOrder(
		hasher.EXPECT().HashFile("/src/a.swift").Return(domain.Digest("da"), nil),
		hasher.EXPECT().HashFile("/src/b.swift").Return(domain.Digest("db"), nil),
		hasher.EXPECT().HashString("-O").Return(domain.Digest("fo")),
		hasher.EXPECT().HashStrings([]string{"da", "dbfo"}).Return(domain.Digest("S")),
	)
	hasher.EXPECT().HashStrings([]string{}).Return(domain.Digest("E")).Times(3)
	hasher.EXPECT().HashStrings([]string{
		"S", "Core", "iOS", "framework", "io.xcache.core", "Core", "E", "E", "E",
	}).Return(domain.Digest("final"))

	got, err := contenthash.NewGraphContentHasher(hasher, nil, 1).HashUnit(unit)
	require.NoError(t, err)
	assert.Equal(t, domain.Digest("final"), got)
}

func TestGraphContentHasher_ErrorKeepsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)

	hasher.EXPECT().HashFile("/src/a.swift").Return(domain.Digest(""), domain.ErrFileReadFailed)

	g := domain.NewGraph()
	require.NoError(t, g.AddUnit(&domain.BuildUnit{
		Name:    domain.NewInternedString("Core"),
		Product: domain.ProductFramework,
		Sources: []domain.SourceFile{{Path: "/src/a.swift"}},
	}))

	fp, err := contenthash.NewGraphContentHasher(hasher, nil, 1).ContentHash(t.Context(), g)
	assert.Nil(t, fp)
	assert.ErrorIs(t, err, domain.ErrFileReadFailed)
	assert.ErrorContains(t, err, "failed to hash unit")
}
