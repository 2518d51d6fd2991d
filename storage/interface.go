package storage

import "context"

// TelemetryStore persists scored plays. Implementations can be swapped for
// tests (MemoryStore) or Postgres (Store).
type TelemetryStore interface {
	// Write
	InsertPlay(ctx context.Context, rec PlayRecord) error

	// Read
	ListPlays(ctx context.Context, limit int) ([]PlayRecord, error)
	Summary(ctx context.Context) (*Summary, error)

	// Lifecycle
	Close()
}

// Ensure both stores implement TelemetryStore at compile time.
var (
	_ TelemetryStore = (*Store)(nil)
	_ TelemetryStore = (*MemoryStore)(nil)
)
