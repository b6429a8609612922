package cli

import (
	"fmt"
	"math"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1234, "₹1,234"},
		{99999, "₹99,999"},
		{100000, "₹100K"},
		{450000, "₹450K"},
		{12345678, "₹12.3M"},
		{-5000, "-₹5,000"},
	}
	for _, tt := range tests {
		if got := FormatMoney("₹", tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatMoneyExact(t *testing.T) {
	if got := FormatMoneyExact("$", 1234567.4); got != "$1,234,567" {
		t.Fatalf("got %q", got)
	}
	if got := FormatMoneyExact("₹", -400000); got != "-₹400,000" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(12.5); got != "12.5 mo" {
		t.Fatalf("got %q", got)
	}
	if got := FormatMonths(math.Inf(1)); got != "∞" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatSignedPercent(t *testing.T) {
	if got := FormatSignedPercent(5); got != "+5.0%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatSignedPercent(-2.5); got != "-2.5%" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{125, "2m"},
		{3725, "1h 2m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestRenderSparklineLength(t *testing.T) {
	got := RenderSparkline([]float64{1, 2, 3, 4})
	if n := len([]rune(got)); n != 4 {
		t.Fatalf("sparkline runes = %d, want 4", n)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(5, 10, 10); got != "█████" {
		t.Fatalf("got %q", got)
	}
	if got := RenderHorizontalBar(5, 0, 10); got != "" {
		t.Fatalf("zero max: got %q", got)
	}
}

func TestRunwayStyle(t *testing.T) {
	cases := []struct {
		months float64
		want   string
	}{
		{1.5, string(ColorRed)},
		{4, string(ColorOrange)},
		{12.5, string(ColorGreen)},
	}
	for _, tc := range cases {
		style := RunwayStyle(tc.months)
		if got := fmt.Sprint(style.GetForeground()); got != tc.want {
			t.Fatalf("RunwayStyle(%.1f) foreground = %s, want %s", tc.months, got, tc.want)
		}
	}
}

func TestSeverityStyle(t *testing.T) {
	cases := []struct {
		severity model.Severity
		want     string
	}{
		{model.SeverityCritical, string(ColorRed)},
		{model.SeverityHigh, string(ColorOrange)},
		{model.SeverityMedium, string(ColorYellow)},
		{model.SeverityLow, string(ColorTextMuted)},
	}
	for _, tc := range cases {
		style := SeverityStyle(tc.severity)
		if got := fmt.Sprint(style.GetForeground()); got != tc.want {
			t.Fatalf("SeverityStyle(%s) foreground = %s, want %s", tc.severity, got, tc.want)
		}
	}
}
