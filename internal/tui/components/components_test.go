package components

import (
	"strings"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		widths := LayoutRow(100, n)
		if len(widths) != n {
			t.Fatalf("LayoutRow(100, %d) returned %d widths", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Fatalf("LayoutRow(100, %d) sums to %d", n, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Fatal("LayoutRow with n=0 should return nil")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Runway", "12.5 mo", 22)
	tallCard := ContentCard("Forecast", "M0\nM1\nM2\nM3\nM4", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(25)
	if len(labels) != 25 {
		t.Fatalf("labels = %d, want 25", len(labels))
	}
	if labels[0] != "M0" || labels[24] != "M24" {
		t.Fatalf("labels = %q..%q", labels[0], labels[24])
	}
}

func TestTabVisualWidthMatchesTabBar(t *testing.T) {
	theme.SetActive("terminal")

	// The hitbox widths must track the rendered tab names.
	for _, tab := range Tabs {
		active := TabVisualWidth(tab, true)
		inactive := TabVisualWidth(tab, false)
		if active != len(tab.Name) {
			t.Errorf("%s: active width = %d, want %d", tab.Name, active, len(tab.Name))
		}
		if inactive <= active {
			t.Errorf("%s: inactive width %d should exceed active %d (brackets)", tab.Name, inactive, active)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('f'); idx != 0 {
		t.Fatalf("forecast key -> %d", idx)
	}
	if idx := TabIdxByKey('x'); idx != len(Tabs)-1 {
		t.Fatalf("settings key -> %d", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Fatalf("unknown key -> %d", idx)
	}
}
