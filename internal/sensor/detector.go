// internal/sensor/detector.go
package sensor

import (
	"fmt"

	"github.com/google/uuid"
)

// DetectAlerts scans one generation cycle's batch and emits an alert for
// every warning or critical reading, preserving input order. It holds no
// state between calls.
func DetectAlerts(batch []Reading) []Alert {
	var alerts []Alert
	for _, r := range batch {
		if r.Status == StatusNormal {
			continue
		}
		prof, ok := SensorProfileFor(r.SensorType)
		if !ok {
			continue
		}
		threshold := crossedThreshold(prof, r.Value)
		alerts = append(alerts, Alert{
			ID:         uuid.NewString(),
			LocationID: r.LocationID,
			SensorType: r.SensorType,
			Value:      r.Value,
			Unit:       r.Unit,
			Status:     r.Status,
			Threshold:  threshold,
			Message:    fmt.Sprintf("%s at %s is %s: %.3f %s exceeds %.0f %s", r.SensorType, r.LocationID, r.Status, r.Value, r.Unit, threshold, r.Unit),
			Timestamp:  r.Timestamp,
		})
	}
	return alerts
}
