// internal/sensor/evaluator_test.go
package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBands(t *testing.T) {
	// co2 breakpoints: 1000 / 2000 / 5000
	tests := []struct {
		name       string
		value      float64
		wantStatus Status
		wantScore  int
	}{
		{"baseline", 450, StatusNormal, 100},
		{"at normal breakpoint stays normal", 1000, StatusNormal, 100},
		{"just above normal is warning", 1000.1, StatusWarning, 100},
		{"mid lower warning band", 1500, StatusWarning, 90},
		{"at warning breakpoint stays lower band", 2000, StatusWarning, 80},
		{"above warning enters upper band", 2500, StatusWarning, 90},
		{"at critical breakpoint stays warning", 5000, StatusWarning, 40},
		{"above critical", 5500, StatusCritical, 92},
		{"far above critical hits floor", 100000, StatusCritical, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, status := Evaluate("co2", tc.value)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantScore, score)
		})
	}
}

func TestEvaluateCriticalScoreFormula(t *testing.T) {
	// 6250 is 25% past the co2 critical breakpoint of 5000:
	// 100 - (6250-5000)/5000*80 = 80
	score, status := Evaluate("co2", 6250)
	require.Equal(t, StatusCritical, status)
	require.Equal(t, 80, score)
}

func TestEvaluateScoreRange(t *testing.T) {
	for _, typ := range SensorTypes() {
		for v := 0.0; v < 12000; v += 37.5 {
			score, _ := Evaluate(typ, v)
			require.GreaterOrEqual(t, score, 0, "type %s value %v", typ, v)
			require.LessOrEqual(t, score, 100, "type %s value %v", typ, v)
		}
	}
}

func TestEvaluateUnknownSensorType(t *testing.T) {
	score, status := Evaluate("radon", 9999)
	assert.Equal(t, StatusNormal, status)
	assert.Equal(t, 100, score)
}
