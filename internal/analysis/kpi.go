package analysis

import "github.com/bodhisathwik/finsaver/internal/model"

// PerformanceStatus classifies a KPI's progress against its target.
type PerformanceStatus string

const (
	PerfExcellent        PerformanceStatus = "excellent"
	PerfGood             PerformanceStatus = "good"
	PerfNeedsImprovement PerformanceStatus = "needs_improvement"
)

// KPITrend derives a KPI's movement from its prior and current readings.
func KPITrend(kpi model.KPI) Trend {
	return ComputeTrend([]float64{kpi.PrevValue, kpi.Value})
}

// KPIProgress returns value as a percentage of target, 0 when target is zero.
func KPIProgress(kpi model.KPI) float64 {
	if kpi.Target == 0 {
		return 0
	}
	return kpi.Value / kpi.Target * 100
}

// KPIStatus maps progress to a performance band: >=90 excellent, >=70 good.
func KPIStatus(kpi model.KPI) PerformanceStatus {
	progress := KPIProgress(kpi)
	switch {
	case progress >= 90:
		return PerfExcellent
	case progress >= 70:
		return PerfGood
	default:
		return PerfNeedsImprovement
	}
}
