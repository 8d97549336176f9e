package dashboard

import (
	"strings"
	"testing"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	"github.com/recoverops/dca-console/internal/util"
)

func readyStore(t *testing.T) *state.Store {
	t.Helper()

	store := state.NewStore()
	store.ApplyReport(1, api.Report{
		Dashboard: api.DashboardSummary{
			TotalActiveCases: 128,
			TotalARExposure:  2_350_000,
			AvgDaysOverdue:   41.6,
			AgingBuckets: api.AgingBuckets{
				{Label: "0-30", TotalAmount: 50000, Count: 5},
				{Label: "31-60", TotalAmount: 20000, Count: 2},
			},
			RiskDistribution: api.RiskTiers{
				{Tier: "LOW", Count: 40},
				{Tier: "HIGH", Count: 10},
			},
			SLAHealth: api.SLAHealth{OnTime: 90, AtRisk: 25, Breached: 13, OnTimePct: 70.3},
		},
	})
	return store
}

func renderAt(m interface {
	SetSize(int, int)
	View() string
}, width, height int) string {
	m.SetSize(width, height)
	return util.StripANSI(m.View())
}

func TestDashboardRendersKPIs(t *testing.T) {
	m := New(readyStore(t), theme.New(theme.Options{}))

	out := renderAt(m, 120, 30)

	for _, fragment := range []string{"Active cases", "128", "$2.4M", "42", "70.3%"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q:\n%s", fragment, out)
		}
	}
}

func TestDashboardRendersSeriesInOrder(t *testing.T) {
	m := New(readyStore(t), theme.New(theme.Options{}))

	out := renderAt(m, 120, 30)

	first := strings.Index(out, "0-30")
	second := strings.Index(out, "31-60")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected aging buckets in document order, got indexes %d and %d:\n%s", first, second, out)
	}

	low := strings.Index(out, "LOW")
	high := strings.Index(out, "HIGH")
	if low == -1 || high == -1 || low > high {
		t.Fatalf("expected risk tiers in document order, got indexes %d and %d:\n%s", low, high, out)
	}
}

func TestDashboardRendersSLAHealth(t *testing.T) {
	m := New(readyStore(t), theme.New(theme.Options{}))

	out := renderAt(m, 120, 30)

	for _, fragment := range []string{"on time 90", "at risk 25", "breached 13"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q:\n%s", fragment, out)
		}
	}
}

func TestDashboardEmptySeries(t *testing.T) {
	store := state.NewStore()
	store.ApplyReport(1, api.Report{})

	m := New(store, theme.New(theme.Options{}))
	out := renderAt(m, 120, 30)

	if !strings.Contains(out, "No aging data") {
		t.Fatalf("expected aging placeholder:\n%s", out)
	}
	if !strings.Contains(out, "No risk data") {
		t.Fatalf("expected risk placeholder:\n%s", out)
	}
}

func TestDashboardZeroWidth(t *testing.T) {
	m := New(readyStore(t), theme.New(theme.Options{}))
	if out := m.View(); out != "" {
		t.Fatalf("expected empty render before sizing, got %q", out)
	}
}
