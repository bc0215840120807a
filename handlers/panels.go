package handlers

import (
	"fmt"
	"hash/fnv"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The routing, reallocation and community-needs panels are illustrative
// sample data, not real optimization output. They are seeded from the
// request so the same input renders the same panel; a real engine can
// replace these handlers without changing the route surface.

type panelSeed struct {
	Region string `json:"region" binding:"required"`
}

func seedFor(region string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(region))
	return h.Sum32()
}

// RoutingPanel returns sample delivery routes for a region.
func RoutingPanel(c *gin.Context) {
	var req panelSeed
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := seedFor(req.Region)

	routes := make([]gin.H, 0, 3)
	for i := 0; i < 3; i++ {
		n := seed>>uint(i*4)&0xF + 1
		routes = append(routes, gin.H{
			"route_id":    fmt.Sprintf("RT-%s-%d", req.Region, i+1),
			"vehicle":     []string{"truck", "van", "pickup"}[i%3],
			"stops":       int(n%6 + 2),
			"distance_km": float64(n*7 + 12),
			"eta_minutes": int(n*11 + 30),
			"sample":      true,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes, "sample": true})
}

// ReallocationPanel returns sample inter-facility transfer suggestions.
func ReallocationPanel(c *gin.Context) {
	var req panelSeed
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := seedFor(req.Region)

	transfers := make([]gin.H, 0, 2)
	for i := 0; i < 2; i++ {
		n := seed>>uint(i*5)&0x1F + 1
		transfers = append(transfers, gin.H{
			"from":     fmt.Sprintf("%s-depot-%d", req.Region, i+1),
			"to":       fmt.Sprintf("%s-relief-%d", req.Region, i+2),
			"resource": []string{"food", "water", "medical"}[int(n)%3],
			"quantity": int(n*25 + 50),
			"sample":   true,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transfers": transfers, "sample": true})
}

// CommunityNeedsPanel returns sample detected community needs.
func CommunityNeedsPanel(c *gin.Context) {
	var req panelSeed
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := seedFor(req.Region)

	needs := []gin.H{
		{"need": "clean water access", "households": int(seed%400 + 100), "priority": "high", "sample": true},
		{"need": "temporary shelter", "households": int(seed%150 + 40), "priority": "medium", "sample": true},
		{"need": "medical outreach", "households": int(seed%80 + 20), "priority": "medium", "sample": true},
	}
	c.JSON(http.StatusOK, gin.H{"needs": needs, "region": req.Region, "sample": true})
}
