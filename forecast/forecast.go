package forecast

import (
	"math"

	"optiroute/types"
)

const (
	foodPerPersonPerDay  = 3.0 // meals
	waterPerPersonPerDay = 4.0 // liters
	medicalPerPersonDay  = 0.3 // kits
	shelterPerPerson     = 0.8 // spots, not scaled by timeframe

	confidenceFloor = 65.0

	// Urgency decays by half a point per day of the timeline, never
	// below 1.
	urgencyDecayPerDay = 0.5
)

// Project computes the resource projection for a scenario. Severity scales
// every quantity linearly (S/10); shelter demand does not grow with the
// timeframe since spots are occupied, not consumed.
func Project(req types.ForecastRequest) types.ForecastResult {
	p := float64(req.Population)
	s := float64(req.Severity)
	t := float64(req.TimeframeDays)
	scale := s / 10

	total := types.ResourceNeeds{
		Food:    int(math.Round(p * foodPerPersonPerDay * t * scale)),
		Water:   int(math.Round(p * waterPerPersonPerDay * t * scale)),
		Medical: int(math.Round(p * medicalPerPersonDay * t * scale)),
		Shelter: int(math.Round(p * shelterPerPerson * scale)),
	}
	daily := types.ResourceNeeds{
		Food:    int(math.Round(p * foodPerPersonPerDay * scale)),
		Water:   int(math.Round(p * waterPerPersonPerDay * scale)),
		Medical: int(math.Round(p * medicalPerPersonDay * scale)),
		Shelter: int(math.Round(p * shelterPerPerson * scale)),
	}

	return types.ForecastResult{
		TotalNeeds: total,
		DailyNeeds: daily,
		Timeline:   Timeline(req.Severity, req.TimeframeDays),
		Confidence: Confidence(req.Severity, req.Infrastructure),
	}
}

// Confidence starts at 100 and is penalized by severity and by degraded
// infrastructure, floored at 65. There is no upper clamp; the formula
// cannot exceed 100 for severity >= 1 and infrastructure <= 100.
func Confidence(severity int, infrastructure float64) float64 {
	raw := 100 - 3*float64(severity) - (10 - infrastructure/10)
	if raw < confidenceFloor {
		return confidenceFloor
	}
	return raw
}

// Timeline produces the per-day urgency curve and critical-needs labels.
// Days are 0-indexed.
func Timeline(severity, days int) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0, days)
	for i := 0; i < days; i++ {
		urgency := float64(severity) - float64(i)*urgencyDecayPerDay
		if urgency < 1 {
			urgency = 1
		}
		entries = append(entries, types.TimelineEntry{
			Day:           i,
			Urgency:       urgency,
			CriticalNeeds: criticalNeedsForDay(i),
		})
	}
	return entries
}

func criticalNeedsForDay(day int) []string {
	switch {
	case day < 3:
		return []string{"Water", "Medical"}
	case day < 5:
		return []string{"Food", "Shelter"}
	default:
		return []string{"Reconstruction"}
	}
}
