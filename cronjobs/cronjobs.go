package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"optiroute/db"
	"optiroute/geocode"
	"optiroute/stats"
)

const jobTimeout = 2 * time.Minute

// InitCronJobs schedules the recurring maintenance work: dashboard stat
// snapshots every 10 minutes, geocode backfill on a 2-minute offset so the
// two jobs never contend.
func InitCronJobs(store *db.Store, geocoder *geocode.Geocoder) *cron.Cron {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Stat Snapshot Running")
		snapshotStats(store)
	})
	if err != nil {
		log.Println("Error scheduling stat snapshot:", err)
	}

	_, err = c.AddFunc("2-59/10 * * * *", func() {
		log.Println("\nCronJob: Geocode Backfill Running")
		backfillGeocoding(store, geocoder)
	})
	if err != nil {
		log.Println("Error scheduling geocode backfill:", err)
	}

	c.Start()
	return c
}

// snapshotStats aggregates the three dashboards and writes a snapshot doc.
func snapshotStats(store *db.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	hospitals, err := store.ListHospitals(ctx)
	if err != nil {
		log.Printf("Snapshot: listing hospitals failed: %v", err)
		return
	}
	doctors, err := store.ListDoctors(ctx, "")
	if err != nil {
		log.Printf("Snapshot: listing doctors failed: %v", err)
		return
	}
	items, err := store.ListInventory(ctx, "")
	if err != nil {
		log.Printf("Snapshot: listing inventory failed: %v", err)
		return
	}
	demands, err := store.ListDemands(ctx, false)
	if err != nil {
		log.Printf("Snapshot: listing demands failed: %v", err)
		return
	}
	partners, err := store.ListPartners(ctx)
	if err != nil {
		log.Printf("Snapshot: listing partners failed: %v", err)
		return
	}
	farmers, err := store.ListFarmers(ctx)
	if err != nil {
		log.Printf("Snapshot: listing farmers failed: %v", err)
		return
	}
	allocations, err := store.ListAllocations(ctx)
	if err != nil {
		log.Printf("Snapshot: listing allocations failed: %v", err)
		return
	}

	now := time.Now().UTC()
	snap := db.StatSnapshot{
		TakenAt:  now,
		Hospital: stats.BuildHospitalStats(hospitals, doctors),
		Waste:    stats.BuildWasteStats(now, items, demands, partners, farmers),
		Shelter:  stats.BuildShelterStats(allocations),
	}
	if err := store.WriteStatSnapshot(ctx, snap); err != nil {
		log.Printf("Snapshot write failed: %v", err)
		return
	}
	log.Printf("Snapshot written for %s", now.Format(time.RFC3339))
}

// backfillGeocoding fills in coordinates for hospitals that were created
// without them, one batch per run.
func backfillGeocoding(store *db.Store, geocoder *geocode.Geocoder) {
	if geocoder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	hospitals, err := store.ListHospitals(ctx)
	if err != nil {
		log.Printf("Backfill: listing hospitals failed: %v", err)
		return
	}

	for _, h := range hospitals {
		if h.Latitude != 0 || h.Longitude != 0 || h.Address == "" {
			continue
		}

		resolved, err := geocoder.Address(ctx, h.Address)
		if err != nil {
			log.Printf("Backfill: failed to geocode %q: %v", h.Address, err)
			continue
		}

		h.Latitude = resolved.Lat
		h.Longitude = resolved.Long
		h.Address = resolved.FormattedAddress
		if _, err := store.UpdateHospital(ctx, h); err != nil {
			log.Printf("Backfill: update for %s failed: %v", h.HospitalID, err)
			continue
		}
		log.Printf("Backfill: geocoded hospital %s", h.HospitalID)
	}
}
