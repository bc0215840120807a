package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/geo"
	"optiroute/insights"
	"optiroute/types"
)

// RankHospitals filters hospitals by specialty and availability, keeps
// those within the radius (default 25 km), and sorts ascending by
// distance.
func RankHospitals(hospitals []types.Hospital, req types.FinderRequest) []types.HospitalWithDistance {
	radius := req.RadiusKM
	if radius <= 0 {
		radius = geo.DefaultRadiusKM
	}

	var results []types.HospitalWithDistance
	for _, h := range hospitals {
		if h.AvailableBeds <= 0 {
			continue
		}
		if req.NeedsICU && h.AvailableICUBeds <= 0 {
			continue
		}
		if req.Specialty != "" && !hasSpecialty(h, req.Specialty) {
			continue
		}

		dist := geo.HaversineDistance(req.Latitude, req.Longitude, h.Latitude, h.Longitude)
		if dist > radius {
			continue
		}

		rate := h.OccupancyRate()
		results = append(results, types.HospitalWithDistance{
			Hospital:   h,
			DistanceKM: dist,
			Occupancy:  rate,
			Band:       types.OccupancyBandFor(rate),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})
	return results
}

func hasSpecialty(h types.Hospital, specialty string) bool {
	for _, s := range h.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// FindHospitals is the plain finder.
func FindHospitals(c *gin.Context, store *db.Store) {
	var req types.FinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hospitals, err := store.ListHospitals(c.Request.Context())
	if err != nil {
		log.Printf("Finder list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hospitals": RankHospitals(hospitals, req)})
}

// FindHospitalsIntelligent adds a generative triage note to the plain
// finder result. A failed completion degrades to the fallback text, never
// to an error response.
func FindHospitalsIntelligent(c *gin.Context, store *db.Store, generator *insights.Generator) {
	var req types.FinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hospitals, err := store.ListHospitals(c.Request.Context())
	if err != nil {
		log.Printf("Finder list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	ranked := RankHospitals(hospitals, req)

	note := insights.FallbackText
	if len(ranked) > 0 {
		note, err = generator.TriageNote(c.Request.Context(), req.Specialty, ranked)
		if err != nil {
			log.Printf("Triage note fell back: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"hospitals":  ranked,
		"triageNote": note,
	})
}
