// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the currency symbol and comma grouping.
// Large amounts get compact suffixes: 1234567 -> "₹1.2M".
func FormatMoney(currency string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(currency, -amount)
	}
	switch {
	case amount >= 10_000_000:
		return fmt.Sprintf("%s%.1fM", currency, amount/1_000_000)
	case amount >= 100_000:
		return fmt.Sprintf("%s%.0fK", currency, amount/1_000)
	default:
		return currency + FormatNumber(int64(math.Round(amount)))
	}
}

// FormatMoneyExact formats an amount with full comma grouping, no suffixes.
func FormatMoneyExact(currency string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyExact(currency, -amount)
	}
	return currency + FormatNumber(int64(math.Round(amount)))
}

// FormatMonths formats a runway value in months; infinite runway renders
// as the infinity sign.
func FormatMonths(months float64) string {
	if math.IsInf(months, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f mo", months)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value, e.g. 12.34 -> "12.3%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSignedPercent formats a percentage with an explicit sign.
func FormatSignedPercent(pct float64) string {
	if pct >= 0 {
		return "+" + FormatPercent(pct)
	}
	return FormatPercent(pct)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(currency string, current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(currency, delta)
	}
	return "-" + FormatMoney(currency, -delta)
}

// FormatDuration formats seconds into a human-readable duration.
// e.g., 3725 -> "1h 2m", 125 -> "2m", 45 -> "45s"
func FormatDuration(secs int64) string {
	if secs <= 0 {
		return "0s"
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if mins > 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%ds", secs)
}
