package viewmodel

import "testing"

func TestFormatMillions(t *testing.T) {
	cases := []struct {
		amount float64
		expect string
	}{
		{2_350_000, "$2.4M"},
		{1_000_000, "$1.0M"},
		{999_000, "$1.0M"},
		{0, "$0.0M"},
		{12_840_000, "$12.8M"},
	}

	for _, tc := range cases {
		if got := FormatMillions(tc.amount); got != tc.expect {
			t.Fatalf("FormatMillions(%f): expected %q, got %q", tc.amount, tc.expect, got)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	if got := FormatThousands(15400.50); got != "$15.4K" {
		t.Fatalf("expected $15.4K, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(71.35); got != "71.3%" {
		t.Fatalf("expected 71.3%%, got %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("expected 0.0%%, got %q", got)
	}
}

func TestRoundDays(t *testing.T) {
	cases := []struct {
		days   float64
		expect int
	}{
		{41.4, 41},
		{41.5, 42},
		{0, 0},
		{0.49, 0},
	}

	for _, tc := range cases {
		if got := RoundDays(tc.days); got != tc.expect {
			t.Fatalf("RoundDays(%f): expected %d, got %d", tc.days, tc.expect, got)
		}
	}
}

func TestRecoveryOnTarget(t *testing.T) {
	cases := []struct {
		rate   float64
		expect bool
	}{
		{70, true},
		{70.1, true},
		{69.9, false},
		{0, false},
	}

	for _, tc := range cases {
		if got := RecoveryOnTarget(tc.rate); got != tc.expect {
			t.Fatalf("RecoveryOnTarget(%f): expected %v, got %v", tc.rate, tc.expect, got)
		}
	}
}

func TestCapacityOverloaded(t *testing.T) {
	cases := []struct {
		pct    float64
		expect bool
	}{
		{80, false},
		{80.1, true},
		{120, true},
		{0, false},
	}

	for _, tc := range cases {
		if got := CapacityOverloaded(tc.pct); got != tc.expect {
			t.Fatalf("CapacityOverloaded(%f): expected %v, got %v", tc.pct, tc.expect, got)
		}
	}
}

func TestShortCaseID(t *testing.T) {
	cases := []struct {
		id     string
		expect string
	}{
		{"3f8a1c2b-77aa-4b1e", "3f8a1c2b"},
		{"short", "short"},
		{"12345678", "12345678"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ShortCaseID(tc.id); got != tc.expect {
			t.Fatalf("ShortCaseID(%q): expected %q, got %q", tc.id, tc.expect, got)
		}
	}
}
