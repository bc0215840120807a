package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiroute/types"
)

func day(n int) time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestMatch(t *testing.T) {
	sites := []types.StorageSite{
		{SiteID: "wh-near", Latitude: 13.0, Longitude: 80.0},
		{SiteID: "wh-far", Latitude: 13.5, Longitude: 80.5},
	}
	demands := []types.DemandRecord{
		{DemandID: "d-close", Region: "close", Latitude: 13.01, Longitude: 80.01, RequestedKG: 100, Open: true},
		{DemandID: "d-away", Region: "away", Latitude: 13.4, Longitude: 80.4, RequestedKG: 500, Open: true},
	}

	t.Run("assigns lots to the nearest open demand", func(t *testing.T) {
		items := []types.InventoryItem{
			{ItemID: "i1", WarehouseID: "wh-near", QuantityKG: 50, ExpiryDate: day(1), Status: types.InventoryAvailable},
		}

		legs := Match(items, demands, sites)
		require.Len(t, legs, 1)
		assert.Equal(t, "d-close", legs[0].DemandID)
		assert.Equal(t, 50.0, legs[0].QuantityKG)
	})

	t.Run("splits a lot across demands when the nearest fills up", func(t *testing.T) {
		items := []types.InventoryItem{
			{ItemID: "i1", WarehouseID: "wh-near", QuantityKG: 250, ExpiryDate: day(1), Status: types.InventoryAvailable},
		}

		legs := Match(items, demands, sites)
		require.Len(t, legs, 2)
		assert.Equal(t, "d-close", legs[0].DemandID)
		assert.Equal(t, 100.0, legs[0].QuantityKG)
		assert.Equal(t, "d-away", legs[1].DemandID)
		assert.Equal(t, 150.0, legs[1].QuantityKG)
	})

	t.Run("soonest expiry moves first", func(t *testing.T) {
		items := []types.InventoryItem{
			{ItemID: "later", WarehouseID: "wh-near", QuantityKG: 80, ExpiryDate: day(5), Status: types.InventoryAvailable},
			{ItemID: "sooner", WarehouseID: "wh-near", QuantityKG: 80, ExpiryDate: day(1), Status: types.InventoryAvailable},
		}

		legs := Match(items, demands, sites)
		require.NotEmpty(t, legs)
		assert.Equal(t, "sooner", legs[0].ItemID)
	})

	t.Run("skips reserved and expired inventory", func(t *testing.T) {
		items := []types.InventoryItem{
			{ItemID: "i1", WarehouseID: "wh-near", QuantityKG: 50, ExpiryDate: day(1), Status: types.InventoryReserved},
			{ItemID: "i2", WarehouseID: "wh-near", QuantityKG: 50, ExpiryDate: day(1), Status: types.InventoryExpired},
		}
		assert.Empty(t, Match(items, demands, sites))
	})

	t.Run("ignores inventory with no known warehouse", func(t *testing.T) {
		items := []types.InventoryItem{
			{ItemID: "i1", WarehouseID: "unknown", QuantityKG: 50, ExpiryDate: day(1), Status: types.InventoryAvailable},
		}
		assert.Empty(t, Match(items, demands, sites))
	})
}

func TestApplyLegs(t *testing.T) {
	items := []types.InventoryItem{
		{ItemID: "drained", QuantityKG: 100, Status: types.InventoryAvailable},
		{ItemID: "partial", QuantityKG: 200, Status: types.InventoryAvailable},
		{ItemID: "untouched", QuantityKG: 50, Status: types.InventoryAvailable},
	}
	demands := []types.DemandRecord{
		{DemandID: "covered", RequestedKG: 150, FulfilledKG: 50, Open: true},
		{DemandID: "short", RequestedKG: 500, Open: true},
		{DemandID: "idle", RequestedKG: 300, Open: true},
	}
	legs := []types.PlanLeg{
		{ItemID: "drained", DemandID: "covered", QuantityKG: 100},
		{ItemID: "partial", DemandID: "short", QuantityKG: 60},
	}

	changedItems, changedDemands := ApplyLegs(items, demands, legs)

	require.Len(t, changedItems, 2)
	assert.Equal(t, "drained", changedItems[0].ItemID)
	assert.Equal(t, 0.0, changedItems[0].QuantityKG)
	assert.Equal(t, types.InventoryReserved, changedItems[0].Status)
	assert.Equal(t, "partial", changedItems[1].ItemID)
	assert.Equal(t, 140.0, changedItems[1].QuantityKG)
	assert.Equal(t, types.InventoryAvailable, changedItems[1].Status)

	require.Len(t, changedDemands, 2)
	assert.Equal(t, "covered", changedDemands[0].DemandID)
	assert.Equal(t, 150.0, changedDemands[0].FulfilledKG)
	assert.False(t, changedDemands[0].Open)
	assert.Equal(t, "short", changedDemands[1].DemandID)
	assert.Equal(t, 60.0, changedDemands[1].FulfilledKG)
	assert.True(t, changedDemands[1].Open)
}

func TestLegHelpers(t *testing.T) {
	legs := []types.PlanLeg{
		{WarehouseID: "a", QuantityKG: 10},
		{WarehouseID: "b", QuantityKG: 20},
		{WarehouseID: "a", QuantityKG: 5},
	}

	assert.Equal(t, 35.0, TotalKG(legs))

	grouped := LegsByWarehouse(legs)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["a"], 2)
	assert.Len(t, grouped["b"], 1)
}
