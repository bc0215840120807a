package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/db"
	"optiroute/mlmodel"
	"optiroute/stats"
	"optiroute/types"
)

// Allocate scores an allocation request against the prediction service
// and persists the result. Upstream failures surface as 502.
func Allocate(c *gin.Context, store *db.Store, predictor *mlmodel.Client) {
	var req types.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := predictor.Score(c.Request.Context(), req)
	if err != nil {
		log.Printf("Shelter scoring failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
		return
	}

	allocation, err := store.CreateAllocation(c.Request.Context(), types.Allocation{
		ShelterID:   result.ShelterID,
		ShelterName: result.ShelterName,
		FamilySize:  req.FamilySize,
		Score:       result.Score,
		Status:      "allocated",
	})
	if err != nil {
		log.Printf("Allocation persist failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save allocation"})
		return
	}
	c.JSON(http.StatusCreated, allocation)
}

func GetAllocation(c *gin.Context, store *db.Store) {
	allocation, err := store.GetAllocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Allocation not found"})
			return
		}
		log.Printf("Get allocation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, allocation)
}

func ShelterStats(c *gin.Context, store *db.Store) {
	allocations, err := store.ListAllocations(c.Request.Context())
	if err != nil {
		log.Printf("Shelter stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}
	c.JSON(http.StatusOK, stats.BuildShelterStats(allocations))
}

func ModelStatus(c *gin.Context, predictor *mlmodel.Client) {
	status, err := predictor.Status(c.Request.Context())
	if err != nil {
		log.Printf("Model status failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
		return
	}
	c.JSON(http.StatusOK, status)
}

func TestPrediction(c *gin.Context, predictor *mlmodel.Client) {
	result, err := predictor.TestPrediction(c.Request.Context())
	if err != nil {
		log.Printf("Test prediction failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}
