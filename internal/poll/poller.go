package poll

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/state"
)

// DefaultInterval is the fixed auto-refresh cadence.
const DefaultInterval = 30 * time.Second

// Source fetches one complete set of analytics payloads.
type Source interface {
	FetchAll(ctx context.Context) (api.Report, error)
}

// Poller drives the refresh cycle: one immediate fetch on start, then one
// per interval until the context is cancelled. Ticks do not wait for each
// other; each carries a sequence number and the store discards results
// that arrive after a newer tick has already been applied.
type Poller struct {
	source   Source
	store    *state.Store
	interval time.Duration
	kick     chan struct{}
	seq      atomic.Uint64
}

// New creates a poller that feeds refresh results into the store.
func New(source Source, store *state.Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		source:   source,
		store:    store,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}
}

// Run executes the refresh loop until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx)
		case <-p.kick:
			p.tick(ctx)
		}
	}
}

// Kick requests one extra refresh cycle outside the regular cadence. It
// never blocks; a kick during a pending kick coalesces into one.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// tick launches one fetch cycle without waiting for it, so a slow backend
// cannot delay subsequent ticks.
func (p *Poller) tick(ctx context.Context) {
	seq := p.seq.Add(1)
	go func() {
		report, err := p.source.FetchAll(ctx)
		if err != nil {
			p.store.ApplyFailure(seq, err.Error())
			return
		}
		p.store.ApplyReport(seq, report)
	}()
}
