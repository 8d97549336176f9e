package api

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAgingBucketsPreserveDocumentOrder(t *testing.T) {
	payload := `{
		"0-30":  {"total_amount": 50000, "count": 5},
		"31-60": {"total_amount": 20000, "count": 2},
		"61-90": {"total_amount": 9000,  "count": 1}
	}`

	var buckets AgingBuckets
	if err := json.Unmarshal([]byte(payload), &buckets); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	expected := AgingBuckets{
		{Label: "0-30", TotalAmount: 50000, Count: 5},
		{Label: "31-60", TotalAmount: 20000, Count: 2},
		{Label: "61-90", TotalAmount: 9000, Count: 1},
	}
	if diff := cmp.Diff(expected, buckets); diff != "" {
		t.Fatalf("buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestAgingBucketsNullAndEmpty(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"null", `null`},
		{"empty object", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buckets AgingBuckets
			if err := json.Unmarshal([]byte(tc.payload), &buckets); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(buckets) != 0 {
				t.Fatalf("expected empty buckets, got %#v", buckets)
			}
		})
	}
}

func TestAgingBucketsRejectNonObject(t *testing.T) {
	var buckets AgingBuckets
	if err := json.Unmarshal([]byte(`[1,2,3]`), &buckets); err == nil {
		t.Fatal("expected error for JSON array")
	}
}

func TestRiskTiersPreserveDocumentOrder(t *testing.T) {
	payload := `{
		"LOW":      {"count": 40},
		"MEDIUM":   {"count": 25},
		"HIGH":     {"count": 10},
		"CRITICAL": {"count": 3}
	}`

	var tiers RiskTiers
	if err := json.Unmarshal([]byte(payload), &tiers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	expected := RiskTiers{
		{Tier: "LOW", Count: 40},
		{Tier: "MEDIUM", Count: 25},
		{Tier: "HIGH", Count: 10},
		{Tier: "CRITICAL", Count: 3},
	}
	if diff := cmp.Diff(expected, tiers); diff != "" {
		t.Fatalf("tiers mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardSummaryDecode(t *testing.T) {
	payload := `{
		"total_active_cases": 128,
		"total_ar_exposure": 2350000,
		"avg_days_overdue": 41.6,
		"aging_buckets": {"0-30": {"total_amount": 50000, "count": 5}},
		"risk_distribution": {"HIGH": {"count": 10}},
		"sla_health": {"on_time": 90, "at_risk": 25, "breached": 13, "on_time_pct": 70.3}
	}`

	var summary DashboardSummary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	expected := DashboardSummary{
		TotalActiveCases: 128,
		TotalARExposure:  2350000,
		AvgDaysOverdue:   41.6,
		AgingBuckets:     AgingBuckets{{Label: "0-30", TotalAmount: 50000, Count: 5}},
		RiskDistribution: RiskTiers{{Tier: "HIGH", Count: 10}},
		SLAHealth:        SLAHealth{OnTime: 90, AtRisk: 25, Breached: 13, OnTimePct: 70.3},
	}
	if diff := cmp.Diff(expected, summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}
