// Package contenthash computes the cache fingerprints of a build unit graph.
package contenthash

import (
	"context"
	"runtime"

	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.GraphContentHashing = (*GraphContentHasher)(nil)

// GraphContentHasher fingerprints every cacheable unit of a graph.
type GraphContentHasher struct {
	hasher      ports.ContentHasher
	coreData    *CoreDataModelsContentHasher
	telemetry   ports.Telemetry
	parallelism int
}

// NewGraphContentHasher creates a GraphContentHasher.
// A parallelism below one uses one worker per CPU. Telemetry may be nil.
func NewGraphContentHasher(
	hasher ports.ContentHasher,
	telemetry ports.Telemetry,
	parallelism int,
) *GraphContentHasher {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	return &GraphContentHasher{
		hasher:      hasher,
		coreData:    NewCoreDataModelsContentHasher(hasher),
		telemetry:   telemetry,
		parallelism: parallelism,
	}
}

// ContentHash returns the digest of every framework unit in the graph, keyed by unit name.
// Units are hashed concurrently. The first failure cancels the rest and no mapping is returned.
func (h *GraphContentHasher) ContentHash(ctx context.Context, graph *domain.Graph) (domain.Fingerprints, error) {
	units := graph.CacheableUnits()
	results := make([]domain.UnitDigest, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)

	for i, unit := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			d, err := h.recordUnit(gctx, unit)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to hash unit"), "unit", unit.Name.String())
			}

			results[i] = domain.UnitDigest{Unit: unit.Name.String(), Digest: d}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewFingerprints(results), nil
}

func (h *GraphContentHasher) recordUnit(ctx context.Context, unit *domain.BuildUnit) (domain.Digest, error) {
	if h.telemetry == nil {
		return h.HashUnit(unit)
	}

	_, vertex := h.telemetry.Record(ctx, "hash "+unit.Name.String())
	d, err := h.HashUnit(unit)
	if err == nil {
		vertex.Log(domain.LogLevelDebug, "digest "+d.String())
	}
	vertex.Complete(err)
	return d, err
}

// HashUnit computes the digest of a single unit regardless of its product kind.
func (h *GraphContentHasher) HashUnit(unit *domain.BuildUnit) (domain.Digest, error) {
	sources, err := h.hashSources(unit.Sources)
	if err != nil {
		return "", err
	}

	resources, err := h.hashResources(unit.Resources)
	if err != nil {
		return "", err
	}

	coreData, err := h.coreData.Hash(unit.CoreDataModels)
	if err != nil {
		return "", err
	}

	scripts, err := h.hashScripts(unit.Actions)
	if err != nil {
		return "", err
	}

	return h.hasher.HashStrings([]string{
		sources.String(),
		unit.Name.String(),
		string(unit.Platform),
		string(unit.Product),
		unit.BundleID,
		unit.ProductName,
		resources.String(),
		coreData.String(),
		scripts.String(),
	}), nil
}

// hashSources sorts by path, so declaration order does not matter.
// Per-file compiler flags are appended to the file digest before folding.
func (h *GraphContentHasher) hashSources(sources []domain.SourceFile) (domain.Digest, error) {
	sorted := domain.SortSources(sources)
	entries := make([]string, 0, len(sorted))
	for _, src := range sorted {
		d, err := h.hasher.HashFile(src.Path)
		if err != nil {
			return "", err
		}

		entry := d.String()
		if src.HasCompilerFlags() {
			entry += h.hasher.HashString(src.CompilerFlags).String()
		}
		entries = append(entries, entry)
	}
	return h.hasher.HashStrings(entries), nil
}

// hashResources keeps the declared order.
func (h *GraphContentHasher) hashResources(resources []domain.FileElement) (domain.Digest, error) {
	digests := make([]string, 0, len(resources))
	for _, res := range resources {
		var (
			d   domain.Digest
			err error
		)
		if res.IsFolderReference() {
			d, err = h.hasher.HashFolder(res.Path)
		} else {
			d, err = h.hasher.HashFile(res.Path)
		}
		if err != nil {
			return "", err
		}
		digests = append(digests, d.String())
	}
	return h.hasher.HashStrings(digests), nil
}

func (h *GraphContentHasher) hashScripts(actions []domain.BuildPhaseScript) (domain.Digest, error) {
	digests := make([]string, 0, len(actions))
	for i := range actions {
		d, err := h.hashScript(&actions[i])
		if err != nil {
			return "", err
		}
		digests = append(digests, d.String())
	}
	return h.hasher.HashStrings(digests), nil
}

// hashScript folds the script content, identity and declared paths.
// Input and output paths enter as strings, not content.
func (h *GraphContentHasher) hashScript(action *domain.BuildPhaseScript) (domain.Digest, error) {
	var contentHash string
	if action.Path != "" {
		d, err := h.hasher.HashFile(action.Path)
		if err != nil {
			return "", err
		}
		contentHash = d.String()
	}

	size := 4 + len(action.Arguments) + len(action.InputPaths) + len(action.OutputPaths) + len(action.OutputFileListPaths)
	parts := make([]string, 0, size)
	parts = append(parts, contentHash, action.Name, action.Tool, string(action.Order))
	parts = append(parts, action.Arguments...)
	parts = append(parts, action.InputPaths...)
	parts = append(parts, action.OutputPaths...)
	parts = append(parts, action.OutputFileListPaths...)

	return h.hasher.HashStrings(parts), nil
}
