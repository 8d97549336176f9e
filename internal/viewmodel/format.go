package viewmodel

import (
	"fmt"
	"math"
)

const (
	// recoveryPassThreshold is the minimum recovery rate considered on
	// target for an agency.
	recoveryPassThreshold = 70.0

	// capacityWarnThreshold is the utilization above which an agency is
	// flagged as overloaded.
	capacityWarnThreshold = 80.0

	// shortCaseIDLen is the display length of truncated case identifiers.
	shortCaseIDLen = 8
)

// FormatMillions renders a currency amount in millions to one decimal,
// e.g. 2350000 -> "$2.4M".
func FormatMillions(amount float64) string {
	return fmt.Sprintf("$%.1fM", amount/1_000_000)
}

// FormatThousands renders a currency amount in thousands to one decimal.
func FormatThousands(amount float64) string {
	return fmt.Sprintf("$%.1fK", amount/1000)
}

// FormatPercent renders a 0-100 rate with one decimal and a percent sign.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// RoundDays rounds an average day count to the nearest whole day.
func RoundDays(days float64) int {
	return int(math.Round(days))
}

// RecoveryOnTarget reports whether an agency's recovery rate passes the
// leaderboard badge threshold.
func RecoveryOnTarget(rate float64) bool {
	return rate >= recoveryPassThreshold
}

// CapacityOverloaded reports whether an agency's utilization warrants a
// capacity warning.
func CapacityOverloaded(pct float64) bool {
	return pct > capacityWarnThreshold
}

// ShortCaseID truncates an opaque case identifier for table display.
func ShortCaseID(id string) string {
	runes := []rune(id)
	if len(runes) <= shortCaseIDLen {
		return id
	}
	return string(runes[:shortCaseIDLen])
}
