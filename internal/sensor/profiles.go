// internal/sensor/profiles.go
package sensor

// SensorProfile describes the baseline behavior of one sensor type.
// Thresholds must be ascending: Normal < Warning < Critical.
type SensorProfile struct {
	Type     string  `json:"type"`
	Base     float64 `json:"base"`
	Variance float64 `json:"variance"`
	Unit     string  `json:"unit"`
	Normal   float64 `json:"normal"`
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// LocationProfile describes one monitored physical zone. Intensity is a
// multiplicative factor modelling environmental differences between zones.
type LocationProfile struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Intensity float64 `json:"intensity"`
}

// Static profile tables. Readings reference profiles by key so that config
// changes apply to future readings only.
var (
	sensorProfiles = map[string]SensorProfile{
		"co2":         {Type: "co2", Base: 450, Variance: 150, Unit: "ppm", Normal: 1000, Warning: 2000, Critical: 5000},
		"humidity":    {Type: "humidity", Base: 45, Variance: 15, Unit: "%", Normal: 60, Warning: 75, Critical: 90},
		"pm25":        {Type: "pm25", Base: 18, Variance: 10, Unit: "µg/m³", Normal: 35, Warning: 75, Critical: 150},
		"temperature": {Type: "temperature", Base: 22, Variance: 4, Unit: "°C", Normal: 28, Warning: 35, Critical: 42},
		"aqi":         {Type: "aqi", Base: 55, Variance: 25, Unit: "AQI", Normal: 100, Warning: 200, Critical: 300},
	}

	locationProfiles = map[string]LocationProfile{
		"production-floor": {ID: "production-floor", Name: "Production Floor", Intensity: 1.25},
		"warehouse":        {ID: "warehouse", Name: "Warehouse", Intensity: 0.90},
		"loading-dock":     {ID: "loading-dock", Name: "Loading Dock", Intensity: 1.10},
		"office":           {ID: "office", Name: "Office Wing", Intensity: 0.75},
		"boiler-room":      {ID: "boiler-room", Name: "Boiler Room", Intensity: 1.40},
	}

	// Iteration orders. Batches are built locations-outer, sensors-inner, so
	// these determine broadcast ordering and must stay stable.
	sensorOrder   = []string{"co2", "humidity", "pm25", "temperature", "aqi"}
	locationOrder = []string{"production-floor", "warehouse", "loading-dock", "office", "boiler-room"}
)

// SensorTypes returns the known sensor types in batch order.
func SensorTypes() []string {
	out := make([]string, len(sensorOrder))
	copy(out, sensorOrder)
	return out
}

// LocationIDs returns the known location identifiers in batch order.
func LocationIDs() []string {
	out := make([]string, len(locationOrder))
	copy(out, locationOrder)
	return out
}

// SensorCatalog returns the sensor profiles in batch order.
func SensorCatalog() []SensorProfile {
	out := make([]SensorProfile, 0, len(sensorOrder))
	for _, t := range sensorOrder {
		out = append(out, sensorProfiles[t])
	}
	return out
}

// LocationCatalog returns the location profiles in batch order.
func LocationCatalog() []LocationProfile {
	out := make([]LocationProfile, 0, len(locationOrder))
	for _, id := range locationOrder {
		out = append(out, locationProfiles[id])
	}
	return out
}

// SensorProfileFor looks up the profile for a sensor type.
func SensorProfileFor(sensorType string) (SensorProfile, bool) {
	p, ok := sensorProfiles[sensorType]
	return p, ok
}

// LocationProfileFor looks up the profile for a location id.
func LocationProfileFor(locationID string) (LocationProfile, bool) {
	p, ok := locationProfiles[locationID]
	return p, ok
}
