package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/forecast"
	"optiroute/geocode"
	"optiroute/insights"
	"optiroute/nlp"
	"optiroute/types"
)

// Forecast computes the resource projection, attaches the generative
// briefing, and resolves the free-text location to coordinates when the
// NLP and geocoding clients are configured. The numeric projection is
// always returned; the optional enrichments degrade independently.
func Forecast(c *gin.Context, generator *insights.Generator, extractor *nlp.Extractor, geocoder *geocode.Geocoder) {
	var req types.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := forecast.Project(req)

	text, err := generator.ForecastInsights(c.Request.Context(), req)
	if err != nil {
		log.Printf("Forecast insights fell back: %v", err)
	}
	result.AIInsights = text

	if extractor != nil && geocoder != nil {
		place, err := extractor.FirstLocation(c.Request.Context(), req.Location)
		if err != nil {
			log.Printf("Location extraction failed for %q: %v", req.Location, err)
		} else if place != "" {
			resolved, err := geocoder.Address(c.Request.Context(), place)
			if err != nil {
				log.Printf("Failed to geocode %q: %v", place, err)
			} else {
				result.ResolvedAddress = resolved.FormattedAddress
				result.ResolvedLat = resolved.Lat
				result.ResolvedLong = resolved.Long
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
