package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/stats"
)

// HospitalStats aggregates the hospital dashboard numbers.
func HospitalStats(c *gin.Context, store *db.Store) {
	ctx := c.Request.Context()

	hospitals, err := store.ListHospitals(ctx)
	if err != nil {
		log.Printf("Hospital stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	doctors, err := store.ListDoctors(ctx, "")
	if err != nil {
		log.Printf("Hospital stats doctors failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	c.JSON(http.StatusOK, stats.BuildHospitalStats(hospitals, doctors))
}
