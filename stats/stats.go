package stats

import (
	"time"

	"optiroute/types"
)

// expiringSoonWindow is how far ahead inventory counts as expiring.
const expiringSoonWindow = 72 * time.Hour

// BuildHospitalStats aggregates the hospital dashboard numbers.
func BuildHospitalStats(hospitals []types.Hospital, doctors []types.Doctor) types.HospitalStats {
	var s types.HospitalStats
	s.TotalHospitals = len(hospitals)

	var occupancySum float64
	for _, h := range hospitals {
		s.TotalBeds += h.TotalBeds
		s.AvailableBeds += h.AvailableBeds
		s.TotalICUBeds += h.ICUBeds
		s.AvailableICUBeds += h.AvailableICUBeds

		rate := h.OccupancyRate()
		occupancySum += rate
		switch types.OccupancyBandFor(rate) {
		case types.BandCritical:
			s.CriticalCount++
		case types.BandWarning:
			s.WarningCount++
		default:
			s.NormalCount++
		}
	}
	if len(hospitals) > 0 {
		s.AvgOccupancy = occupancySum / float64(len(hospitals))
	}

	for _, d := range doctors {
		if d.Status == types.DoctorOnDuty {
			s.DoctorsOnDuty++
		}
	}
	return s
}

// BuildWasteStats aggregates the waste-optimizer dashboard numbers.
// Coverage is fulfilled demand over total requested, as a percentage.
func BuildWasteStats(now time.Time, items []types.InventoryItem, demands []types.DemandRecord, partners []types.LogisticsPartner, farmers []types.Farmer) types.WasteStats {
	var s types.WasteStats

	for _, item := range items {
		if item.Status == types.InventoryAvailable {
			s.TotalStockKG += item.QuantityKG
			if item.ExpiryDate.Before(now.Add(expiringSoonWindow)) {
				s.ExpiringSoon++
			}
		}
	}

	var requested, fulfilled float64
	for _, d := range demands {
		requested += d.RequestedKG
		fulfilled += d.FulfilledKG
		if d.Open {
			s.OpenDemands++
			s.OpenDemandKG += d.RequestedKG - d.FulfilledKG
		}
	}
	if requested > 0 {
		s.CoveragePercent = fulfilled / requested * 100
	}

	for _, p := range partners {
		if p.Active {
			s.ActivePartners++
		}
	}
	s.RegisteredFarms = len(farmers)
	return s
}

// BuildShelterStats aggregates allocation history.
func BuildShelterStats(allocations []types.Allocation) types.ShelterStats {
	var s types.ShelterStats
	s.TotalAllocations = len(allocations)

	var scoreSum float64
	for _, a := range allocations {
		s.PeoplePlaced += a.FamilySize
		scoreSum += a.Score
	}
	if len(allocations) > 0 {
		s.AvgScore = scoreSum / float64(len(allocations))
	}
	return s
}
