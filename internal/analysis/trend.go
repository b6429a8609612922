package analysis

import "math"

// TrendDirection labels the direction of a metric's recent movement.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Trend holds the computed movement between the two most recent values.
type Trend struct {
	Direction TrendDirection
	ChangePct float64
	Latest    float64
	Previous  float64
}

// ComputeTrend compares the last two entries of a history. Fewer than two
// values, or a zero previous value, yields a stable trend with zero change.
// Movements under 1% in either direction count as stable.
func ComputeTrend(history []float64) Trend {
	if len(history) < 2 {
		return Trend{Direction: TrendStable}
	}

	latest := history[len(history)-1]
	previous := history[len(history)-2]

	var change float64
	if previous != 0 {
		change = (latest - previous) / previous * 100
	}

	direction := TrendStable
	switch {
	case math.Abs(change) < 1:
		direction = TrendStable
	case change > 0:
		direction = TrendUp
	default:
		direction = TrendDown
	}

	return Trend{
		Direction: direction,
		ChangePct: math.Round(change*100) / 100,
		Latest:    latest,
		Previous:  previous,
	}
}
