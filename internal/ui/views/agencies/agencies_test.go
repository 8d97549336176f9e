package agencies

import (
	"strings"
	"testing"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	"github.com/recoverops/dca-console/internal/util"
)

func storeWithPerformance(t *testing.T, rows []api.DCAPerformance) *state.Store {
	t.Helper()

	store := state.NewStore()
	store.ApplyReport(1, api.Report{Performance: rows})
	return store
}

func sampleRows() []api.DCAPerformance {
	return []api.DCAPerformance{
		{Code: "APEX", Name: "Apex Recovery", RecoveryRate: 82.5, AvgDaysToRecovery: 21.3, SLAAdherenceRate: 95.0, CapacityPct: 64.0, ActiveCases: 120},
		{Code: "NRTH", Name: "Northwind Collections", RecoveryRate: 61.0, AvgDaysToRecovery: 34.8, SLAAdherenceRate: 80.2, CapacityPct: 91.5, ActiveCases: 87},
	}
}

func TestAgenciesRendersLeaderboardInBackendOrder(t *testing.T) {
	m := New(storeWithPerformance(t, sampleRows()), theme.New(theme.Options{}))
	m.SetSize(140, 30)

	out := util.StripANSI(m.View())

	apex := strings.Index(out, "APEX")
	north := strings.Index(out, "NRTH")
	if apex == -1 || north == -1 || apex > north {
		t.Fatalf("expected backend row order preserved, got indexes %d and %d:\n%s", apex, north, out)
	}
}

func TestAgenciesBadgesAndWarnings(t *testing.T) {
	m := New(storeWithPerformance(t, sampleRows()), theme.New(theme.Options{}))
	m.SetSize(140, 30)

	out := util.StripANSI(m.View())
	lines := strings.Split(out, "\n")

	var apexLine, northLine string
	for _, line := range lines {
		if strings.Contains(line, "APEX") {
			apexLine = line
		}
		if strings.Contains(line, "NRTH") {
			northLine = line
		}
	}

	if !strings.Contains(apexLine, "82.5% ✓") {
		t.Fatalf("expected recovery badge on passing agency, got %q", apexLine)
	}
	if strings.Contains(northLine, "✓") {
		t.Fatalf("expected no badge below threshold, got %q", northLine)
	}
	if !strings.Contains(northLine, "91.5% !") {
		t.Fatalf("expected capacity warning on overloaded agency, got %q", northLine)
	}
	if strings.Contains(apexLine, "!") {
		t.Fatalf("expected no capacity warning at 64%%, got %q", apexLine)
	}
}

func TestAgenciesEmptyState(t *testing.T) {
	m := New(storeWithPerformance(t, nil), theme.New(theme.Options{}))
	m.SetSize(140, 30)

	out := util.StripANSI(m.View())
	if !strings.Contains(out, "No agency performance data") {
		t.Fatalf("expected empty-state message:\n%s", out)
	}
}
