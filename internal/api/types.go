package api

// Public JSON types returned by the API. They are separate from the core
// snapshot types; mapper.go converts between them.

// StatusResponse is the payload for /api/status.
type StatusResponse struct {
	DeviceID      string `json:"deviceId"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Version       string `json:"version"`
	Recording     bool   `json:"recording"`
}

// OrientationResponse is the payload for /api/telemetry/orientation.
type OrientationResponse struct {
	Orientation OrientationView `json:"orientation"`
	Timestamp   int64           `json:"timestamp"` // Unix ms
}

// OrientationView is one IMU reading.
type OrientationView struct {
	Available bool     `json:"available"`
	Pitch     float64  `json:"pitch"` // deg
	Roll      float64  `json:"roll"`  // deg
	Accel     AxisView `json:"accel"` // g
	Gyro      AxisView `json:"gyro"`  // deg/s
	Temp      float64  `json:"temp"`  // °C
}

// AxisView is a three-axis sensor value.
type AxisView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PositionResponse is the payload for /api/telemetry/position.
type PositionResponse struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	SpeedKph   int     `json:"speedKph"`
	HeadingDeg int     `json:"headingDeg"`
	Timestamp  int64   `json:"timestamp"` // Unix ms
}

// HealthResponse is the payload for /api/healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"` // Unix ms
}
