package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"optiroute/types"
)

func TestBuildHospitalStats(t *testing.T) {
	hospitals := []types.Hospital{
		{TotalBeds: 100, AvailableBeds: 50, ICUBeds: 10, AvailableICUBeds: 4}, // 50% normal
		{TotalBeds: 100, AvailableBeds: 25, ICUBeds: 8, AvailableICUBeds: 2},  // 75% warning
		{TotalBeds: 100, AvailableBeds: 5, ICUBeds: 12, AvailableICUBeds: 0},  // 95% critical
	}
	doctors := []types.Doctor{
		{Status: types.DoctorOnDuty},
		{Status: types.DoctorOnDuty},
		{Status: types.DoctorOffDuty},
	}

	s := BuildHospitalStats(hospitals, doctors)

	assert.Equal(t, 3, s.TotalHospitals)
	assert.Equal(t, 300, s.TotalBeds)
	assert.Equal(t, 80, s.AvailableBeds)
	assert.Equal(t, 30, s.TotalICUBeds)
	assert.Equal(t, 6, s.AvailableICUBeds)
	assert.InDelta(t, (50.0+75.0+95.0)/3, s.AvgOccupancy, 0.001)
	assert.Equal(t, 1, s.CriticalCount)
	assert.Equal(t, 1, s.WarningCount)
	assert.Equal(t, 1, s.NormalCount)
	assert.Equal(t, 2, s.DoctorsOnDuty)
}

func TestBuildHospitalStatsEmpty(t *testing.T) {
	s := BuildHospitalStats(nil, nil)
	assert.Zero(t, s.AvgOccupancy)
	assert.Zero(t, s.TotalHospitals)
}

func TestBuildWasteStats(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	items := []types.InventoryItem{
		{QuantityKG: 100, Status: types.InventoryAvailable, ExpiryDate: now.Add(24 * time.Hour)},
		{QuantityKG: 200, Status: types.InventoryAvailable, ExpiryDate: now.Add(120 * time.Hour)},
		{QuantityKG: 300, Status: types.InventoryReserved, ExpiryDate: now.Add(24 * time.Hour)},
	}
	demands := []types.DemandRecord{
		{RequestedKG: 400, FulfilledKG: 100, Open: true},
		{RequestedKG: 100, FulfilledKG: 100, Open: false},
	}
	partners := []types.LogisticsPartner{{Active: true}, {Active: false}}
	farmers := []types.Farmer{{FarmerID: "f1"}}

	s := BuildWasteStats(now, items, demands, partners, farmers)

	assert.Equal(t, 300.0, s.TotalStockKG)
	assert.Equal(t, 1, s.ExpiringSoon)
	assert.Equal(t, 1, s.OpenDemands)
	assert.Equal(t, 300.0, s.OpenDemandKG)
	assert.InDelta(t, 40.0, s.CoveragePercent, 0.001)
	assert.Equal(t, 1, s.ActivePartners)
	assert.Equal(t, 1, s.RegisteredFarms)
}

func TestBuildShelterStats(t *testing.T) {
	allocations := []types.Allocation{
		{FamilySize: 4, Score: 0.9},
		{FamilySize: 2, Score: 0.7},
	}

	s := BuildShelterStats(allocations)
	assert.Equal(t, 2, s.TotalAllocations)
	assert.Equal(t, 6, s.PeoplePlaced)
	assert.InDelta(t, 0.8, s.AvgScore, 0.001)

	assert.Zero(t, BuildShelterStats(nil).AvgScore)
}
