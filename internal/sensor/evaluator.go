// internal/sensor/evaluator.go
package sensor

import "math"

// Evaluate maps a raw value to a quality score and status for the given
// sensor type. Values strictly greater than a breakpoint escalate; equal
// values stay in the lower band. An unknown sensor type yields normal/100
// rather than an error so a bad type cannot crash the generation cycle.
//
// The warning band has two sub-ranges with different score floors (70 above
// the normal breakpoint, 40 above the warning breakpoint); both report
// status=warning.
func Evaluate(sensorType string, value float64) (int, Status) {
	prof, ok := sensorProfiles[sensorType]
	if !ok {
		return 100, StatusNormal
	}

	switch {
	case value > prof.Critical:
		return scoreFloor(10, 100-(value-prof.Critical)/prof.Critical*80), StatusCritical
	case value > prof.Warning:
		return scoreFloor(40, 100-(value-prof.Warning)/prof.Warning*40), StatusWarning
	case value > prof.Normal:
		return scoreFloor(70, 100-(value-prof.Normal)/prof.Normal*20), StatusWarning
	default:
		return 100, StatusNormal
	}
}

func scoreFloor(floor int, score float64) int {
	s := int(math.Round(score))
	if s < floor {
		return floor
	}
	return s
}

// crossedThreshold returns the breakpoint a value escalated past, used when
// building alerts. Only meaningful for warning/critical values.
func crossedThreshold(prof SensorProfile, value float64) float64 {
	switch {
	case value > prof.Critical:
		return prof.Critical
	case value > prof.Warning:
		return prof.Warning
	default:
		return prof.Normal
	}
}
