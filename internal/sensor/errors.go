// internal/sensor/errors.go
package sensor

import "errors"

// Configuration errors: the generator was asked for a sensor type or location
// outside the static tables. With validated inputs these should not occur.
var (
	ErrUnknownSensorType = errors.New("unknown sensor type")
	ErrUnknownLocation   = errors.New("unknown location")
)
