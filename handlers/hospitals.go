package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/geocode"
	"optiroute/types"
)

// CreateHospital writes a new hospital. Records arriving without
// coordinates are forward-geocoded from the address when a geocoder is
// configured.
func CreateHospital(c *gin.Context, store *db.Store, geocoder *geocode.Geocoder) {
	var h types.Hospital
	if err := c.ShouldBindJSON(&h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Latitude == 0 && h.Longitude == 0 && h.Address != "" && geocoder != nil {
		resolved, err := geocoder.Address(c.Request.Context(), h.Address)
		if err != nil {
			log.Printf("Failed to geocode %q: %v", h.Address, err)
		} else {
			h.Latitude = resolved.Lat
			h.Longitude = resolved.Long
			h.Address = resolved.FormattedAddress
		}
	}

	created, err := store.CreateHospital(c.Request.Context(), h)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetHospital(c *gin.Context, store *db.Store) {
	h, err := store.GetHospital(c.Request.Context(), c.Param("id"))
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hospital not found"})
			return
		}
		log.Printf("Get hospital failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, h)
}

// ListHospitals returns all hospitals decorated with occupancy and band.
func ListHospitals(c *gin.Context, store *db.Store) {
	hospitals, err := store.ListHospitals(c.Request.Context())
	if err != nil {
		log.Printf("List hospitals failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	type row struct {
		types.Hospital
		Occupancy float64             `json:"occupancy"`
		Band      types.OccupancyBand `json:"band"`
	}
	rows := make([]row, 0, len(hospitals))
	for _, h := range hospitals {
		rate := h.OccupancyRate()
		rows = append(rows, row{Hospital: h, Occupancy: rate, Band: types.OccupancyBandFor(rate)})
	}
	c.JSON(http.StatusOK, rows)
}

func UpdateHospital(c *gin.Context, store *db.Store) {
	var h types.Hospital
	if err := c.ShouldBindJSON(&h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.HospitalID = c.Param("id")

	updated, err := store.UpdateHospital(c.Request.Context(), h)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hospital not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteHospital(c *gin.Context, store *db.Store) {
	if err := store.DeleteHospital(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("Delete hospital failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hospital"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
