package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiroute/types"
)

// Hospitals placed around central Chennai. Distances from the request
// point (13.0827, 80.2707) are roughly 0, 15 and 40 km.
func finderFixtures() []types.Hospital {
	return []types.Hospital{
		{
			HospitalID:       "central",
			Name:             "Central General",
			Latitude:         13.0827,
			Longitude:        80.2707,
			TotalBeds:        200,
			AvailableBeds:    40,
			AvailableICUBeds: 5,
			Specialties:      []string{"cardiology", "trauma"},
		},
		{
			HospitalID:    "suburb",
			Name:          "Suburban Clinic",
			Latitude:      13.20,
			Longitude:     80.32,
			TotalBeds:     80,
			AvailableBeds: 10,
			Specialties:   []string{"pediatrics"},
		},
		{
			HospitalID:    "distant",
			Name:          "Coastal Hospital",
			Latitude:      13.40,
			Longitude:     80.50,
			TotalBeds:     120,
			AvailableBeds: 60,
			Specialties:   []string{"cardiology"},
		},
		{
			HospitalID:    "full",
			Name:          "No Beds Memorial",
			Latitude:      13.0827,
			Longitude:     80.2707,
			TotalBeds:     50,
			AvailableBeds: 0,
		},
	}
}

func TestRankHospitals(t *testing.T) {
	at := types.FinderRequest{Latitude: 13.0827, Longitude: 80.2707}

	t.Run("defaults to a 25 km radius and sorts by distance", func(t *testing.T) {
		results := RankHospitals(finderFixtures(), at)
		require.Len(t, results, 2)
		assert.Equal(t, "central", results[0].HospitalID)
		assert.Equal(t, "suburb", results[1].HospitalID)
		assert.Less(t, results[0].DistanceKM, results[1].DistanceKM)
	})

	t.Run("wider radius reaches the distant hospital", func(t *testing.T) {
		req := at
		req.RadiusKM = 60
		results := RankHospitals(finderFixtures(), req)
		require.Len(t, results, 3)
		assert.Equal(t, "distant", results[2].HospitalID)
	})

	t.Run("excludes hospitals with no free beds", func(t *testing.T) {
		for _, r := range RankHospitals(finderFixtures(), at) {
			assert.NotEqual(t, "full", r.HospitalID)
		}
	})

	t.Run("specialty filter", func(t *testing.T) {
		req := at
		req.Specialty = "cardiology"
		results := RankHospitals(finderFixtures(), req)
		require.Len(t, results, 1)
		assert.Equal(t, "central", results[0].HospitalID)
	})

	t.Run("ICU requirement drops hospitals without free ICU beds", func(t *testing.T) {
		req := at
		req.NeedsICU = true
		results := RankHospitals(finderFixtures(), req)
		require.Len(t, results, 1)
		assert.Equal(t, "central", results[0].HospitalID)
	})

	t.Run("annotates occupancy and band", func(t *testing.T) {
		results := RankHospitals(finderFixtures(), at)
		require.NotEmpty(t, results)
		assert.InDelta(t, 80.0, results[0].Occupancy, 0.001)
		assert.Equal(t, types.BandWarning, results[0].Band)
	})

	t.Run("no candidates yields an empty result", func(t *testing.T) {
		req := types.FinderRequest{Latitude: -33.86, Longitude: 151.2}
		assert.Empty(t, RankHospitals(finderFixtures(), req))
	})
}

func TestFinderRequestBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bind", func(c *gin.Context) {
		var req types.FinderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, req)
	})

	t.Run("equator and prime meridian bind", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/bind", gin.H{"latitude": 0, "longitude": 0})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("out-of-range coordinates rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/bind", gin.H{"latitude": 91, "longitude": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, r, http.MethodPost, "/bind", gin.H{"latitude": 0, "longitude": -181})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
