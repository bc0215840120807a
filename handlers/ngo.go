package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/types"
)

func CreateOperation(c *gin.Context, repo db.OperationRepo) {
	var op types.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if op.Progress < 0 || op.Progress > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}

	created, err := repo.Create(c.Request.Context(), op)
	if err != nil {
		log.Printf("Create operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operation"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetOperation(c *gin.Context, repo db.OperationRepo) {
	op, err := repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		return
	}
	c.JSON(http.StatusOK, op)
}

func UpdateOperation(c *gin.Context, repo db.OperationRepo) {
	var op types.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if op.Progress < 0 || op.Progress > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}
	op.ID = c.Param("id")

	updated, err := repo.Update(c.Request.Context(), op)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func ListOperations(c *gin.Context, repo db.OperationRepo) {
	ops, err := repo.List(c.Request.Context(), c.Query("ngo_id"))
	if err != nil {
		log.Printf("List operations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func CreateVolunteer(c *gin.Context, repo db.VolunteerRepo) {
	var v types.Volunteer
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := repo.Create(c.Request.Context(), v)
	if err != nil {
		log.Printf("Create volunteer failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register volunteer"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetVolunteer(c *gin.Context, repo db.VolunteerRepo) {
	v, err := repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func UpdateVolunteer(c *gin.Context, repo db.VolunteerRepo) {
	var v types.Volunteer
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.ID = c.Param("id")

	updated, err := repo.Update(c.Request.Context(), v)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func ListVolunteers(c *gin.Context, repo db.VolunteerRepo) {
	volunteers, err := repo.List(c.Request.Context(), c.Query("ngo_id"))
	if err != nil {
		log.Printf("List volunteers failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, volunteers)
}
