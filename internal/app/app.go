// Package app implements the application layer for xcache.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"time"

	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.GraphLoader
	hashers   ports.GraphHasherFactory
	store     ports.FingerprintStore
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.GraphLoader,
	hashers ports.GraphHasherFactory,
	store ports.FingerprintStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		hashers:   hashers,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to timestamp stored fingerprints.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Options selects the project and overrides its cache settings.
type Options struct {
	// Cwd is where manifest discovery starts. Ignored when ConfigPath is set.
	Cwd string
	// ConfigPath points at an explicit manifest.
	ConfigPath string
	// Units restricts the report to the named units. Empty means every unit.
	Units []string
	// Algorithm overrides the manifest algorithm when set.
	Algorithm string
	// Parallelism overrides the manifest parallelism when positive.
	Parallelism int
	// NoSave skips persisting the new fingerprints.
	NoSave bool
}

// Report is the outcome of a Hash or Diff run.
type Report struct {
	Algorithm string
	StorePath string
	Changes   []domain.UnitChange
}

// Hash fingerprints the cacheable units, compares them with the store and
// saves the new fingerprints unless NoSave is set.
func (a *App) Hash(ctx context.Context, opts Options) (*Report, error) {
	project, err := a.load(opts)
	if err != nil {
		return nil, err
	}

	settings := applyOverrides(project.Settings, opts)

	graph, err := selectUnits(project.Graph, opts.Units, a.logger)
	if err != nil {
		return nil, err
	}

	hasher, err := a.hashers.NewGraphHasher(settings)
	if err != nil {
		return nil, err
	}

	fingerprints, err := hasher.ContentHash(ctx, graph)
	if err != nil {
		return nil, errors.Join(domain.ErrHashingFailed, err)
	}

	storePath := resolveStorePath(project.Graph.Root(), settings.StorePath)
	previous, err := a.loadPrevious(storePath)
	if err != nil {
		return nil, err
	}

	changes := domain.CompareFingerprints(fingerprints, previous, settings.Algorithm)
	a.markCached(ctx, changes)

	if !opts.NoSave {
		if err := a.store.Save(storePath, a.merge(previous, fingerprints, settings.Algorithm)); err != nil {
			return nil, zerr.Wrap(err, "failed to save fingerprints")
		}
	}

	a.logger.Info(summarize(changes))

	return &Report{
		Algorithm: settings.Algorithm,
		StorePath: storePath,
		Changes:   changes,
	}, nil
}

// Diff reports how the current fingerprints differ from the stored ones without saving.
func (a *App) Diff(ctx context.Context, opts Options) (*Report, error) {
	opts.NoSave = true
	return a.Hash(ctx, opts)
}

// Clean removes the fingerprint store of the project and returns its path.
func (a *App) Clean(opts Options) (string, error) {
	project, err := a.load(opts)
	if err != nil {
		return "", err
	}

	storePath := resolveStorePath(project.Graph.Root(), project.Settings.StorePath)
	if err := a.store.Remove(storePath); err != nil {
		return "", zerr.Wrap(err, "failed to remove fingerprints")
	}

	a.logger.Info("removed " + storePath)
	return storePath, nil
}

func (a *App) load(opts Options) (*domain.Project, error) {
	var (
		project *domain.Project
		err     error
	)
	if opts.ConfigPath != "" {
		project, err = a.loader.LoadFile(opts.ConfigPath)
	} else {
		cwd := opts.Cwd
		if cwd == "" {
			cwd = "."
		}
		project, err = a.loader.Load(cwd)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// loadPrevious treats an unreadable store format as empty, so an upgrade
// re-fingerprints everything instead of failing.
func (a *App) loadPrevious(storePath string) (map[string]domain.FingerprintRecord, error) {
	previous, err := a.store.Load(storePath)
	switch {
	case err == nil:
		return previous, nil
	case errors.Is(err, domain.ErrStoreSchemaMismatch), errors.Is(err, domain.ErrStoreDecodeFailed):
		a.logger.Warn("discarding unreadable fingerprint store " + storePath)
		return map[string]domain.FingerprintRecord{}, nil
	default:
		return nil, zerr.Wrap(err, "failed to load fingerprints")
	}
}

// markCached flags unchanged units on their telemetry vertex.
func (a *App) markCached(ctx context.Context, changes []domain.UnitChange) {
	if a.telemetry == nil {
		return
	}
	for _, change := range changes {
		if change.Status != domain.ChangeStatusUnchanged {
			continue
		}
		_, vertex := a.telemetry.Record(ctx, "hash "+change.Unit)
		vertex.Cached()
		vertex.Complete(nil)
	}
}

// merge keeps records of units that were not hashed in this run.
func (a *App) merge(
	previous map[string]domain.FingerprintRecord,
	fingerprints domain.Fingerprints,
	algorithm string,
) map[string]domain.FingerprintRecord {
	records := maps.Clone(previous)
	if records == nil {
		records = make(map[string]domain.FingerprintRecord, len(fingerprints))
	}
	ts := a.now().UTC()
	for unit, d := range fingerprints {
		records[unit] = domain.FingerprintRecord{
			Unit:      unit,
			Digest:    d,
			Algorithm: algorithm,
			Timestamp: ts,
		}
	}
	return records
}

func applyOverrides(settings domain.CacheSettings, opts Options) domain.CacheSettings {
	if opts.Algorithm != "" {
		settings.Algorithm = opts.Algorithm
	}
	if settings.Algorithm == "" {
		settings.Algorithm = domain.DefaultAlgorithm
	}
	if opts.Parallelism > 0 {
		settings.Parallelism = opts.Parallelism
	}
	if settings.StorePath == "" {
		settings.StorePath = domain.DefaultStorePath()
	}
	return settings
}

// selectUnits returns a graph holding only the named units.
// Units that are not cacheable are reported and skipped.
func selectUnits(graph *domain.Graph, names []string, logger ports.Logger) (*domain.Graph, error) {
	if len(names) == 0 {
		return graph, nil
	}

	selected := domain.NewGraph()
	selected.SetRoot(graph.Root())
	for _, name := range names {
		unit, ok := graph.GetUnit(domain.NewInternedString(name))
		if !ok {
			return nil, errors.Join(zerr.With(domain.ErrUnitNotFound, "unit_name", name), domain.ErrUnitNotFound)
		}
		if !unit.IsCacheable() {
			logger.Warn(fmt.Sprintf("skipping %s: %s units are not cacheable", name, unit.Product))
			continue
		}
		if _, exists := selected.GetUnit(unit.Name); exists {
			continue
		}
		if err := selected.AddUnit(unit); err != nil {
			return nil, err
		}
	}
	return selected, nil
}

func resolveStorePath(root, storePath string) string {
	if filepath.IsAbs(storePath) {
		return storePath
	}
	return filepath.Join(root, storePath)
}

func summarize(changes []domain.UnitChange) string {
	counts := make(map[domain.ChangeStatus]int, 3)
	for _, c := range changes {
		counts[c.Status]++
	}
	return fmt.Sprintf("fingerprinted %d units: %d new, %d changed, %d unchanged",
		len(changes),
		counts[domain.ChangeStatusNew],
		counts[domain.ChangeStatusChanged],
		counts[domain.ChangeStatusUnchanged],
	)
}
