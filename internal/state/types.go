package state

import (
	"time"

	"github.com/recoverops/dca-console/internal/api"
)

// ViewKind identifies a top-level view inside the TUI router.
type ViewKind string

const (
	ViewDashboard ViewKind = "dashboard"
	ViewCases     ViewKind = "cases"
	ViewAgencies  ViewKind = "agencies"
)

// DefaultViewOrder drives the tab navigation order across the application.
var DefaultViewOrder = []ViewKind{
	ViewDashboard,
	ViewCases,
	ViewAgencies,
}

// Phase is the data-availability state of the console. Loading only ever
// precedes the first completed refresh; after that every cycle lands on
// Ready or Failed.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Snapshot is a threadsafe copy of the application's state tree. A Ready
// snapshot carries the three payloads wholesale; a Failed snapshot
// carries only the reason string.
type Snapshot struct {
	ActiveView  ViewKind
	Phase       Phase
	Dashboard   api.DashboardSummary
	Performance []api.DCAPerformance
	Cases       []api.Case
	LastError   string
	UpdatedAt   time.Time
}
