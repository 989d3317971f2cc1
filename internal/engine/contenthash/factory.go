package contenthash

import (
	"go.trai.ch/xcache/internal/core/domain"
	"go.trai.ch/xcache/internal/core/ports"
)

var _ ports.GraphHasherFactory = (*Factory)(nil)

// Factory builds GraphContentHashers from cache settings.
type Factory struct {
	hashers   ports.ContentHasherFactory
	telemetry ports.Telemetry
}

// NewFactory creates a Factory.
func NewFactory(hashers ports.ContentHasherFactory, telemetry ports.Telemetry) *Factory {
	return &Factory{hashers: hashers, telemetry: telemetry}
}

// NewGraphHasher returns a hasher using the configured algorithm and parallelism.
func (f *Factory) NewGraphHasher(settings domain.CacheSettings) (ports.GraphContentHashing, error) {
	hasher, err := f.hashers.NewContentHasher(settings.Algorithm)
	if err != nil {
		return nil, err
	}
	return NewGraphContentHasher(hasher, f.telemetry, settings.Parallelism), nil
}
