// internal/storage/synthetic_test.go
package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

func TestSyntheticQueryDenseBackfill(t *testing.T) {
	s := NewSyntheticStore(sensor.NewGenerator(), testLogger())

	list, err := s.Query(24)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	// 24h at 10-minute spacing is 144 instants across the full matrix.
	matrix := len(sensor.SensorTypes()) * len(sensor.LocationIDs())
	assert.Equal(t, 144*matrix, len(list))

	// Newest first.
	for i := 1; i < len(list); i++ {
		require.False(t, list[i-1].Timestamp.Before(list[i].Timestamp),
			"list not time-ordered at index %d", i)
	}

	// Every pair of the matrix is covered.
	seen := map[string]bool{}
	for _, r := range list {
		seen[r.LocationID+"/"+r.SensorType] = true
	}
	assert.Len(t, seen, matrix)
}

func TestSyntheticQueryIncludesLiveSaves(t *testing.T) {
	s := NewSyntheticStore(sensor.NewGenerator(), testLogger())

	live := testReading("co2", "warehouse", 777.25, time.Now().UTC())
	s.Save(live)

	list, err := s.Query(1)
	require.NoError(t, err)

	found := false
	for _, r := range list {
		if r.Value == 777.25 {
			found = true
			break
		}
	}
	assert.True(t, found, "live save missing from query result")
}

func TestSyntheticSaveEvictsOldest(t *testing.T) {
	s := NewSyntheticStore(sensor.NewGenerator(), testLogger())
	now := time.Now().UTC()
	for i := 0; i < liveBufferSize+10; i++ {
		s.Save(testReading("co2", "warehouse", float64(i), now))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.Len(t, s.buffer, liveBufferSize)
	assert.Equal(t, float64(10), s.buffer[0].Value)
}
