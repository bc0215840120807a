package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"optiroute/db"
	"optiroute/geocode"
	"optiroute/insights"
	"optiroute/planner"
	"optiroute/stats"
	"optiroute/types"
)

func CreateInventoryItem(c *gin.Context, store *db.Store) {
	var item types.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.CreateInventoryItem(c.Request.Context(), item)
	if err != nil {
		log.Printf("Create inventory failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func ListInventory(c *gin.Context, store *db.Store) {
	items, err := store.ListInventory(c.Request.Context(), c.Query("warehouse_id"))
	if err != nil {
		log.Printf("List inventory failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateDemand(c *gin.Context, store *db.Store) {
	var d types.DemandRecord
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.CreateDemand(c.Request.Context(), d)
	if err != nil {
		log.Printf("Create demand failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create demand"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func ListDemands(c *gin.Context, store *db.Store) {
	demands, err := store.ListDemands(c.Request.Context(), c.Query("open") == "true")
	if err != nil {
		log.Printf("List demands failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, demands)
}

func CreatePartner(c *gin.Context, store *db.Store) {
	var p types.LogisticsPartner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.CreatePartner(c.Request.Context(), p)
	if err != nil {
		log.Printf("Create partner failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create logistics partner"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func ListPartners(c *gin.Context, store *db.Store) {
	partners, err := store.ListPartners(c.Request.Context())
	if err != nil {
		log.Printf("List partners failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, partners)
}

// CreateStorageSite geocodes the site address when coordinates are
// missing, same as hospitals.
func CreateStorageSite(c *gin.Context, store *db.Store, geocoder *geocode.Geocoder) {
	var site types.StorageSite
	if err := c.ShouldBindJSON(&site); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if site.Latitude == 0 && site.Longitude == 0 && site.Address != "" && geocoder != nil {
		resolved, err := geocoder.Address(c.Request.Context(), site.Address)
		if err != nil {
			log.Printf("Failed to geocode %q: %v", site.Address, err)
		} else {
			site.Latitude = resolved.Lat
			site.Longitude = resolved.Long
			site.Address = resolved.FormattedAddress
		}
	}

	created, err := store.CreateStorageSite(c.Request.Context(), site)
	if err != nil {
		log.Printf("Create storage site failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create storage site"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func ListStorageSites(c *gin.Context, store *db.Store) {
	sites, err := store.ListStorageSites(c.Request.Context())
	if err != nil {
		log.Printf("List storage sites failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, sites)
}

func CreateFarmer(c *gin.Context, store *db.Store, geocoder *geocode.Geocoder) {
	var f types.Farmer
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if f.Latitude == 0 && f.Longitude == 0 && f.Address != "" && geocoder != nil {
		resolved, err := geocoder.Address(c.Request.Context(), f.Address)
		if err != nil {
			log.Printf("Failed to geocode %q: %v", f.Address, err)
		} else {
			f.Latitude = resolved.Lat
			f.Longitude = resolved.Long
			f.Address = resolved.FormattedAddress
		}
	}

	created, err := store.CreateFarmer(c.Request.Context(), f)
	if err != nil {
		log.Printf("Create farmer failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register farmer"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func ListFarmers(c *gin.Context, store *db.Store) {
	farmers, err := store.ListFarmers(c.Request.Context())
	if err != nil {
		log.Printf("List farmers failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, farmers)
}

// WasteStats aggregates the waste-optimizer dashboard numbers.
func WasteStats(c *gin.Context, store *db.Store) {
	ctx := c.Request.Context()

	items, err := store.ListInventory(ctx, "")
	if err != nil {
		log.Printf("Waste stats inventory failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	demands, err := store.ListDemands(ctx, false)
	if err != nil {
		log.Printf("Waste stats demands failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	partners, err := store.ListPartners(ctx)
	if err != nil {
		log.Printf("Waste stats partners failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	farmers, err := store.ListFarmers(ctx)
	if err != nil {
		log.Printf("Waste stats farmers failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	c.JSON(http.StatusOK, stats.BuildWasteStats(time.Now().UTC(), items, demands, partners, farmers))
}

// GeneratePlan matches expiring inventory to open demand and attaches
// per-warehouse dispatch briefings. Matching is deterministic; only the
// briefing prose comes from the model, with per-warehouse fallback.
// Assigned stock is reserved and demand fulfillment recorded so a repeated
// plan run does not hand out the same lots again.
func GeneratePlan(c *gin.Context, store *db.Store, generator *insights.Generator) {
	ctx := c.Request.Context()

	items, err := store.ListInventory(ctx, "")
	if err != nil {
		log.Printf("Plan inventory failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	demands, err := store.ListDemands(ctx, true)
	if err != nil {
		log.Printf("Plan demands failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	sites, err := store.ListStorageSites(ctx)
	if err != nil {
		log.Printf("Plan sites failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	legs := planner.Match(items, demands, sites)

	changedItems, changedDemands := planner.ApplyLegs(items, demands, legs)
	for _, item := range changedItems {
		if err := store.UpdateInventoryItem(ctx, item); err != nil {
			log.Printf("Plan inventory update failed for %s: %v", item.ItemID, err)
		}
	}
	for _, d := range changedDemands {
		if err := store.UpdateDemand(ctx, d); err != nil {
			log.Printf("Plan demand update failed for %s: %v", d.DemandID, err)
		}
	}

	plan := types.RedistributionPlan{
		PlanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Legs:        legs,
		TotalKG:     planner.TotalKG(legs),
		Briefings:   generator.PlanBriefings(ctx, planner.LegsByWarehouse(legs)),
	}
	c.JSON(http.StatusOK, plan)
}
