package ports

import (
	"context"
	"io"

	"go.trai.ch/xcache/internal/core/domain"
)

// Telemetry records progress of units being hashed.
type Telemetry interface {
	// Record starts a vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and ends the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer attached to the vertex output.
	Stdout() io.Writer
	// Log writes a leveled message to the vertex output.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished; a nil err means success.
	Complete(err error)
	// Cached marks the vertex as a cache hit.
	Cached()
}
