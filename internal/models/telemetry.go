package models

// VehicleIdentity names the simulated vehicle and the node it runs on.
// Set once from configuration at startup.
type VehicleIdentity struct {
	UAVID    string `json:"uav_id"`
	NodeName string `json:"node_name"`
}

// GPSOrigin is the configured reference position. Per-request positions are
// derived from it; the origin itself is never mutated.
type GPSOrigin struct {
	Latitude       float64 `json:"latitude"`        // degrees
	Longitude      float64 `json:"longitude"`       // degrees
	Altitude       float64 `json:"altitude"`        // meters
	SatelliteCount int     `json:"satellite_count"` // visible satellites
	FixType        int     `json:"fix_type"`        // 0=none, 2=2D, 3=3D
}

// BatteryBaseline is the configured battery state at process start.
type BatteryBaseline struct {
	Voltage        float64 `json:"voltage"`         // V
	InitialPercent float64 `json:"initial_percent"` // 0–100
	Temperature    float64 `json:"temperature"`     // °C
}

// FlightBaseline is the configured flight state, echoed unchanged into
// every snapshot.
type FlightBaseline struct {
	Mode        string  `json:"mode"` // e.g. MANUAL, STABILIZE, LOITER, AUTO, RTL, LAND
	Armed       bool    `json:"armed"`
	GroundSpeed float64 `json:"ground_speed"` // m/s
}
