package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DashboardSummary aggregates portfolio-wide collection KPIs.
type DashboardSummary struct {
	TotalActiveCases int          `json:"total_active_cases"`
	TotalARExposure  float64      `json:"total_ar_exposure"`
	AvgDaysOverdue   float64      `json:"avg_days_overdue"`
	AgingBuckets     AgingBuckets `json:"aging_buckets"`
	RiskDistribution RiskTiers    `json:"risk_distribution"`
	SLAHealth        SLAHealth    `json:"sla_health"`
}

// SLAHealth counts cases by SLA standing.
type SLAHealth struct {
	OnTime    int     `json:"on_time"`
	AtRisk    int     `json:"at_risk"`
	Breached  int     `json:"breached"`
	OnTimePct float64 `json:"on_time_pct"`
}

// AgingBucket groups outstanding amounts by time since due.
type AgingBucket struct {
	Label       string
	TotalAmount float64
	Count       int
}

// AgingBuckets decodes a JSON object while preserving document key order.
// Bucket labels are backend-defined; the console treats them as opaque.
type AgingBuckets []AgingBucket

// UnmarshalJSON implements json.Unmarshaler.
func (b *AgingBuckets) UnmarshalJSON(data []byte) error {
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var stat struct {
			TotalAmount float64 `json:"total_amount"`
			Count       int     `json:"count"`
		}
		if err := dec.Decode(&stat); err != nil {
			return err
		}
		*b = append(*b, AgingBucket{Label: key, TotalAmount: stat.TotalAmount, Count: stat.Count})
		return nil
	})
}

// RiskTier is one slice of the portfolio risk distribution.
type RiskTier struct {
	Tier  string
	Count int
}

// RiskTiers decodes a JSON object while preserving document key order.
type RiskTiers []RiskTier

// UnmarshalJSON implements json.Unmarshaler.
func (r *RiskTiers) UnmarshalJSON(data []byte) error {
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var stat struct {
			Count int `json:"count"`
		}
		if err := dec.Decode(&stat); err != nil {
			return err
		}
		*r = append(*r, RiskTier{Tier: key, Count: stat.Count})
		return nil
	})
}

// DCAPerformance is one leaderboard row for a collection agency. The
// backend returns rows pre-ranked; the console never re-sorts them.
type DCAPerformance struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	RecoveryRate      float64 `json:"recovery_rate"`
	AvgDaysToRecovery float64 `json:"avg_days_to_recovery"`
	SLAAdherenceRate  float64 `json:"sla_adherence_rate"`
	CapacityPct       float64 `json:"capacity_pct"`
	ActiveCases       int     `json:"active_cases"`
}

// Case is a single collection case as returned by the cases endpoint.
type Case struct {
	CaseID           string  `json:"case_id"`
	AccountNumber    string  `json:"account_number"`
	TotalOutstanding float64 `json:"total_outstanding"`
	DaysOverdue      int     `json:"days_overdue"`
	PriorityScore    float64 `json:"priority_score"`
	SLATier          string  `json:"sla_tier"`
	Status           string  `json:"status"`
	SLABreach        bool    `json:"sla_breach"`
}

// Report bundles the three payloads of one successful refresh cycle.
type Report struct {
	Dashboard   DashboardSummary
	Performance []DCAPerformance
	Cases       []Case
}

// decodeOrderedObject walks a JSON object token by token so callers see
// keys in document order, which encoding/json maps would scramble.
func decodeOrderedObject(data []byte, visit func(key string, dec *json.Decoder) error) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := visit(key, dec); err != nil {
			return err
		}
	}

	_, err = dec.Token()
	return err
}
