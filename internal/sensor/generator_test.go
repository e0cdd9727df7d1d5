// internal/sensor/generator_test.go
package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKnownPair(t *testing.T) {
	g := NewGenerator()
	now := time.Date(2025, 6, 12, 10, 30, 0, 0, time.UTC)

	r, err := g.Generate("co2", "warehouse", now)
	require.NoError(t, err)

	assert.Equal(t, "co2", r.SensorType)
	assert.Equal(t, "warehouse", r.LocationID)
	assert.Equal(t, "ppm", r.Unit)
	assert.Equal(t, now, r.Timestamp)
	assert.Equal(t, now.Add(-30*24*time.Hour), r.Metadata.CalibrationDate)
	assert.NotEmpty(t, r.Metadata.Firmware)
	assert.GreaterOrEqual(t, r.QualityScore, 0)
	assert.LessOrEqual(t, r.QualityScore, 100)
}

func TestGenerateValuesNonNegative(t *testing.T) {
	g := NewGenerator()
	now := time.Date(2025, 6, 12, 3, 0, 0, 0, time.UTC) // night band, lowest factors
	for _, typ := range SensorTypes() {
		for _, loc := range LocationIDs() {
			for i := 0; i < 50; i++ {
				r, err := g.Generate(typ, loc, now)
				require.NoError(t, err)
				require.GreaterOrEqual(t, r.Value, 0.0, "%s/%s", typ, loc)
			}
		}
	}
}

func TestGenerateUnknownInputs(t *testing.T) {
	g := NewGenerator()
	now := time.Now()

	_, err := g.Generate("radon", "warehouse", now)
	require.ErrorIs(t, err, ErrUnknownSensorType)

	_, err = g.Generate("co2", "rooftop", now)
	require.ErrorIs(t, err, ErrUnknownLocation)
}

func TestComposeBaseline(t *testing.T) {
	// co2 base with unit intensity, unit time factor and no noise passes
	// through untouched and classifies as normal.
	v := compose(450, 1.0, 1.0, 0)
	require.Equal(t, 450.0, v)

	score, status := Evaluate("co2", v)
	assert.Equal(t, StatusNormal, status)
	assert.Equal(t, 100, score)
}

func TestComposeClampsAndRounds(t *testing.T) {
	assert.Equal(t, 0.0, compose(10, 1.0, 1.0, -100))
	assert.Equal(t, 12.346, compose(12.3456789, 1.0, 1.0, 0))
}

func TestTimeOfDayFactorBands(t *testing.T) {
	tests := []struct {
		hour     int
		min, max float64
	}{
		{8, 1.2, 1.5},
		{12, 1.2, 1.5},
		{18, 1.2, 1.5},
		{19, 0.8, 1.0},
		{22, 0.8, 1.0},
		{23, 0.6, 0.8},
		{0, 0.6, 0.8},
		{7, 0.6, 0.8},
	}
	for _, tc := range tests {
		for i := 0; i < 100; i++ {
			f := timeOfDayFactor(tc.hour)
			require.GreaterOrEqual(t, f, tc.min, "hour %d", tc.hour)
			require.LessOrEqual(t, f, tc.max, "hour %d", tc.hour)
		}
	}
}

func TestSnapshotOrderAndSize(t *testing.T) {
	g := NewGenerator()
	batch := g.Snapshot(time.Now())

	require.Len(t, batch, len(SensorTypes())*len(LocationIDs()))

	// Locations outer, sensor types inner.
	i := 0
	for _, loc := range LocationIDs() {
		for _, typ := range SensorTypes() {
			assert.Equal(t, loc, batch[i].LocationID)
			assert.Equal(t, typ, batch[i].SensorType)
			i++
		}
	}
}

func TestSnapshotReadingsFullyPopulated(t *testing.T) {
	g := NewGenerator()
	for _, r := range g.Snapshot(time.Now()) {
		if r.Unit == "" {
			t.Fatalf("reading %s/%s missing unit", r.SensorType, r.LocationID)
		}
		if r.Timestamp.IsZero() {
			t.Fatalf("reading %s/%s missing timestamp", r.SensorType, r.LocationID)
		}
	}
}
