package planner

import (
	"sort"

	"optiroute/geo"
	"optiroute/types"
)

// maxLegDistanceKM keeps assignments inside a practical trucking range.
const maxLegDistanceKM = 150.0

// Match assigns available inventory to open demand, soonest-to-expire
// inventory first, each lot going to the nearest demand point that still
// has unfulfilled quantity. Deterministic; the generative briefing layered
// on top is prose only.
func Match(items []types.InventoryItem, demands []types.DemandRecord, sites []types.StorageSite) []types.PlanLeg {
	siteByID := make(map[string]types.StorageSite, len(sites))
	for _, site := range sites {
		siteByID[site.SiteID] = site
	}

	available := make([]types.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Status == types.InventoryAvailable && item.QuantityKG > 0 {
			available = append(available, item)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].ExpiryDate.Before(available[j].ExpiryDate)
	})

	remaining := make(map[string]float64, len(demands))
	for _, d := range demands {
		if d.Open {
			remaining[d.DemandID] = d.RequestedKG - d.FulfilledKG
		}
	}

	var legs []types.PlanLeg
	for _, item := range available {
		site, ok := siteByID[item.WarehouseID]
		if !ok {
			continue
		}

		quantity := item.QuantityKG
		for quantity > 0 {
			demand, dist, found := nearestOpenDemand(site, demands, remaining)
			if !found {
				break
			}

			move := quantity
			if remaining[demand.DemandID] < move {
				move = remaining[demand.DemandID]
			}
			legs = append(legs, types.PlanLeg{
				ItemID:      item.ItemID,
				WarehouseID: item.WarehouseID,
				DemandID:    demand.DemandID,
				Region:      demand.Region,
				QuantityKG:  move,
				DistanceKM:  dist,
			})
			quantity -= move
			remaining[demand.DemandID] -= move
		}
	}
	return legs
}

func nearestOpenDemand(site types.StorageSite, demands []types.DemandRecord, remaining map[string]float64) (types.DemandRecord, float64, bool) {
	var best types.DemandRecord
	bestDist := maxLegDistanceKM
	found := false

	for _, d := range demands {
		if remaining[d.DemandID] <= 0 {
			continue
		}
		dist := geo.HaversineDistance(site.Latitude, site.Longitude, d.Latitude, d.Longitude)
		if dist <= bestDist {
			best = d
			bestDist = dist
			found = true
		}
	}
	return best, bestDist, found
}

// ApplyLegs returns the inventory and demand records a plan changes:
// assigned quantity is deducted from each lot (fully drained lots flip to
// reserved) and added to each demand's fulfilled total (covered demands
// close). Persisting these keeps a repeated plan run from re-assigning the
// same stock.
func ApplyLegs(items []types.InventoryItem, demands []types.DemandRecord, legs []types.PlanLeg) ([]types.InventoryItem, []types.DemandRecord) {
	movedByItem := make(map[string]float64, len(legs))
	movedByDemand := make(map[string]float64, len(legs))
	for _, leg := range legs {
		movedByItem[leg.ItemID] += leg.QuantityKG
		movedByDemand[leg.DemandID] += leg.QuantityKG
	}

	var changedItems []types.InventoryItem
	for _, item := range items {
		moved, ok := movedByItem[item.ItemID]
		if !ok {
			continue
		}
		item.QuantityKG -= moved
		if item.QuantityKG <= 0 {
			item.QuantityKG = 0
			item.Status = types.InventoryReserved
		}
		changedItems = append(changedItems, item)
	}

	var changedDemands []types.DemandRecord
	for _, d := range demands {
		moved, ok := movedByDemand[d.DemandID]
		if !ok {
			continue
		}
		d.FulfilledKG += moved
		if d.FulfilledKG >= d.RequestedKG {
			d.Open = false
		}
		changedDemands = append(changedDemands, d)
	}
	return changedItems, changedDemands
}

// LegsByWarehouse groups plan legs for per-warehouse briefings.
func LegsByWarehouse(legs []types.PlanLeg) map[string][]types.PlanLeg {
	grouped := make(map[string][]types.PlanLeg)
	for _, leg := range legs {
		grouped[leg.WarehouseID] = append(grouped[leg.WarehouseID], leg)
	}
	return grouped
}

// TotalKG sums the quantity moved across all legs.
func TotalKG(legs []types.PlanLeg) float64 {
	var total float64
	for _, leg := range legs {
		total += leg.QuantityKG
	}
	return total
}
