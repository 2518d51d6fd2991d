package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/tipsypastels/balatro/scoring"
)

// Recorder writes scored plays to a TelemetryStore. It implements
// scoring.Sink; store failures are logged and never reach the scorer.
type Recorder struct {
	Store   TelemetryStore
	Timeout time.Duration // per insert; 0 means no timeout
}

var _ scoring.Sink = (*Recorder)(nil)

// RecordPlay stores res.
func (r *Recorder) RecordPlay(res scoring.Result) {
	if r == nil || r.Store == nil {
		return
	}
	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	if err := r.Store.InsertPlay(ctx, RecordFromResult(res)); err != nil {
		slog.Error("failed to record play", "tag", "storage", "play", res.ID, "err", err)
	}
}
