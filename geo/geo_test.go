package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("identical coordinates are zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(13.0827, 80.2707, 13.0827, 80.2707))
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		// 6371 km * 1 degree in radians = 111.19 km
		assert.InDelta(t, 111.19, HaversineDistance(0, 0, 0, 1), 0.01)
	})

	t.Run("equator to pole is a quarter circumference", func(t *testing.T) {
		// 6371 km * pi/2
		assert.InDelta(t, 10007.54, HaversineDistance(0, 0, 90, 0), 0.01)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		there := HaversineDistance(13.0827, 80.2707, 12.9716, 77.5946)
		back := HaversineDistance(12.9716, 77.5946, 13.0827, 80.2707)
		assert.Equal(t, there, back)
	})
}
