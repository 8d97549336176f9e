package state

import (
	"sync"
	"time"

	"github.com/recoverops/dca-console/internal/api"
)

// Store guards shared application state needed by multiple Bubble Tea
// models. Refresh results are applied with a monotonically increasing
// sequence number: a result older than the newest already applied is
// discarded, so an overlapping slow tick can never overwrite fresher
// data. After Close no result is applied at all.
type Store struct {
	mu         sync.RWMutex
	snapshot   Snapshot
	appliedSeq uint64
	closed     bool
	subs       map[int]*Subscription
	nextSub    int
}

// Subscription delivers notifications when the store mutates.
type Subscription struct {
	id     int
	store  *Store
	events chan struct{}
}

// NewStore creates a state store in the initial loading phase.
func NewStore() *Store {
	return &Store{
		snapshot: Snapshot{
			ActiveView: ViewDashboard,
			Phase:      PhaseLoading,
		},
		subs: make(map[int]*Subscription),
	}
}

// Snapshot returns a copy of the current application state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copySnap := s.snapshot
	copySnap.Dashboard = cloneDashboard(s.snapshot.Dashboard)
	copySnap.Performance = clonePerformance(s.snapshot.Performance)
	copySnap.Cases = cloneCases(s.snapshot.Cases)
	return copySnap
}

// ApplyReport records a successful refresh cycle, replacing all payloads
// wholesale. It reports whether the result was applied; stale sequences
// and writes after Close are rejected.
func (s *Store) ApplyReport(seq uint64, report api.Report) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(seq) {
		return false
	}
	s.snapshot.Phase = PhaseReady
	s.snapshot.Dashboard = cloneDashboard(report.Dashboard)
	s.snapshot.Performance = clonePerformance(report.Performance)
	s.snapshot.Cases = cloneCases(report.Cases)
	s.snapshot.LastError = ""
	s.snapshot.UpdatedAt = time.Now()
	s.notifyLocked()
	return true
}

// ApplyFailure records a failed refresh cycle. Payloads from earlier
// cycles are dropped: the console renders only the latest outcome.
func (s *Store) ApplyFailure(seq uint64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptLocked(seq) {
		return false
	}
	s.snapshot.Phase = PhaseFailed
	s.snapshot.Dashboard = api.DashboardSummary{}
	s.snapshot.Performance = nil
	s.snapshot.Cases = nil
	s.snapshot.LastError = reason
	s.snapshot.UpdatedAt = time.Now()
	s.notifyLocked()
	return true
}

func (s *Store) acceptLocked(seq uint64) bool {
	if s.closed || seq <= s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	return true
}

// SetActiveView updates the router's active view.
func (s *Store) SetActiveView(kind ViewKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.ActiveView = kind
	s.notifyLocked()
}

// ActiveView returns the currently selected view.
func (s *Store) ActiveView() ViewKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.ActiveView
}

// Close stops the store from accepting further refresh results and ends
// all subscriptions. In-flight fetches resolving afterwards become no-ops.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub.events)
		sub.store = nil
	}
}

// Subscribe returns a subscription that receives a signal whenever the
// store mutates.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription{
		id:     s.nextSub,
		store:  s,
		events: make(chan struct{}, 1),
	}
	s.nextSub++
	if s.closed {
		close(sub.events)
		sub.store = nil
		return sub
	}
	s.subs[sub.id] = sub
	return sub
}

func (s *Store) notifyLocked() {
	for _, sub := range s.subs {
		select {
		case sub.events <- struct{}{}:
		default:
		}
	}
}

func (s *Store) removeSubscription(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(sub.events)
	}
}

// Events returns a channel that receives a signal for each store mutation.
func (sub *Subscription) Events() <-chan struct{} {
	if sub == nil {
		return nil
	}
	return sub.events
}

// Close stops the subscription and releases associated resources.
func (sub *Subscription) Close() {
	if sub == nil || sub.store == nil {
		return
	}
	sub.store.removeSubscription(sub.id)
	sub.store = nil
}

func cloneDashboard(d api.DashboardSummary) api.DashboardSummary {
	copyDash := d
	if len(d.AgingBuckets) > 0 {
		copyDash.AgingBuckets = append(api.AgingBuckets(nil), d.AgingBuckets...)
	}
	if len(d.RiskDistribution) > 0 {
		copyDash.RiskDistribution = append(api.RiskTiers(nil), d.RiskDistribution...)
	}
	return copyDash
}

func clonePerformance(rows []api.DCAPerformance) []api.DCAPerformance {
	if len(rows) == 0 {
		return nil
	}
	copyRows := make([]api.DCAPerformance, len(rows))
	copy(copyRows, rows)
	return copyRows
}

func cloneCases(cases []api.Case) []api.Case {
	if len(cases) == 0 {
		return nil
	}
	copyCases := make([]api.Case, len(cases))
	copy(copyCases, cases)
	return copyCases
}
