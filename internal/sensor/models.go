// internal/sensor/models.go
package sensor

import "time"

// Status classifies a reading against its sensor's threshold breakpoints.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Metadata carries informational sensor context. It is never evaluated.
type Metadata struct {
	CalibrationDate time.Time `json:"calibrationDate"`
	Firmware        string    `json:"firmware"`
	Compensated     bool      `json:"temperatureCompensated"`
}

// Reading is one timestamped measurement with its derived classification.
// Readings are immutable after creation.
type Reading struct {
	LocationID   string    `json:"locationId"`
	SensorType   string    `json:"sensorType"`
	Value        float64   `json:"value"`
	Unit         string    `json:"unit"`
	QualityScore int       `json:"qualityScore"`
	Status       Status    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Metadata     Metadata  `json:"metadata"`
}

// Alert is derived from a warning or critical Reading. Fields are copied at
// construction; an Alert does not reference the Reading afterwards.
type Alert struct {
	ID         string    `json:"id"`
	LocationID string    `json:"locationId"`
	SensorType string    `json:"sensorType"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Status     Status    `json:"status"`
	Threshold  float64   `json:"threshold"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
