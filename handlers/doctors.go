package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/types"
)

func CreateDoctor(c *gin.Context, store *db.Store) {
	var d types.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.CreateDoctor(c.Request.Context(), d)
	if err != nil {
		log.Printf("Create doctor failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetDoctor(c *gin.Context, store *db.Store) {
	d, err := store.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Printf("Get doctor failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func ListDoctors(c *gin.Context, store *db.Store) {
	doctors, err := store.ListDoctors(c.Request.Context(), c.Query("hospital_id"))
	if err != nil {
		log.Printf("List doctors failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func UpdateDoctor(c *gin.Context, store *db.Store) {
	var d types.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d.DoctorID = c.Param("id")

	updated, err := store.UpdateDoctor(c.Request.Context(), d)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Printf("Update doctor failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteDoctor(c *gin.Context, store *db.Store) {
	if err := store.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("Delete doctor failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListPatients is the read-only patient listing.
func ListPatients(c *gin.Context, store *db.Store) {
	patients, err := store.ListPatients(c.Request.Context(), c.Query("hospital_id"))
	if err != nil {
		log.Printf("List patients failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, patients)
}
