package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"uav-simulator/internal/models"
)

// Baseline is the full immutable configuration the simulator is built from.
// Loaded once at startup; only read afterwards.
type Baseline struct {
	Identity models.VehicleIdentity
	GPS      models.GPSOrigin
	Battery  models.BatteryBaseline
	Flight   models.FlightBaseline
}

// ConfigError reports an environment variable whose value could not be parsed.
type ConfigError struct {
	Variable string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid value for %s: %v", e.Variable, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Recognized environment variables.
const (
	EnvUAVID       = "UAV_ID"
	EnvNodeName    = "NODE_NAME"
	EnvGPSLat      = "GPS_LAT"
	EnvGPSLon      = "GPS_LON"
	EnvGPSAlt      = "GPS_ALT"
	EnvGPSSats     = "GPS_SATS"
	EnvGPSFix      = "GPS_FIX"
	EnvBattVoltage = "BATT_VOLTAGE"
	EnvBattPercent = "BATT_PERCENT"
	EnvBattTemp    = "BATT_TEMP"
	EnvFlightMode  = "FLIGHT_MODE"
	EnvFlightArmed = "FLIGHT_ARMED"
	EnvFlightSpeed = "FLIGHT_SPEED"
)

// Defaults are kept as strings so overridden and default values go through
// the same parse path.
var defaults = map[string]string{
	EnvUAVID:       "UAV-UNKNOWN",
	EnvNodeName:    "unknown-node",
	EnvGPSLat:      "39.9042",
	EnvGPSLon:      "116.4074",
	EnvGPSAlt:      "50.0",
	EnvGPSSats:     "12",
	EnvGPSFix:      "3",
	EnvBattVoltage: "22.2",
	EnvBattPercent: "85.0",
	EnvBattTemp:    "28.0",
	EnvFlightMode:  "AUTO",
	EnvFlightArmed: "true",
	EnvFlightSpeed: "5.0",
}

// Load reads the thirteen recognized environment variables into a Baseline.
// Absent variables take their defaults; a present but unparseable numeric
// value returns a ConfigError and the caller should abort startup.
func Load() (Baseline, error) {
	v := viper.New()
	for name, def := range defaults {
		v.SetDefault(name, def)
		// viper keys are case-insensitive; bind each one to its exact env name.
		_ = v.BindEnv(name, name)
	}

	var b Baseline
	b.Identity = models.VehicleIdentity{
		UAVID:    v.GetString(EnvUAVID),
		NodeName: v.GetString(EnvNodeName),
	}

	var err error
	if b.GPS.Latitude, err = parseFloat(v, EnvGPSLat); err != nil {
		return Baseline{}, err
	}
	if b.GPS.Longitude, err = parseFloat(v, EnvGPSLon); err != nil {
		return Baseline{}, err
	}
	if b.GPS.Altitude, err = parseFloat(v, EnvGPSAlt); err != nil {
		return Baseline{}, err
	}
	if b.GPS.SatelliteCount, err = parseInt(v, EnvGPSSats); err != nil {
		return Baseline{}, err
	}
	if b.GPS.FixType, err = parseInt(v, EnvGPSFix); err != nil {
		return Baseline{}, err
	}

	if b.Battery.Voltage, err = parseFloat(v, EnvBattVoltage); err != nil {
		return Baseline{}, err
	}
	if b.Battery.InitialPercent, err = parseFloat(v, EnvBattPercent); err != nil {
		return Baseline{}, err
	}
	if b.Battery.Temperature, err = parseFloat(v, EnvBattTemp); err != nil {
		return Baseline{}, err
	}

	b.Flight.Mode = v.GetString(EnvFlightMode)
	// Only the exact lowercase-folded string "true" arms the vehicle.
	// "1", "yes" and friends stay disarmed.
	b.Flight.Armed = strings.ToLower(v.GetString(EnvFlightArmed)) == "true"
	if b.Flight.GroundSpeed, err = parseFloat(v, EnvFlightSpeed); err != nil {
		return Baseline{}, err
	}

	return b, nil
}

func parseFloat(v *viper.Viper, name string) (float64, error) {
	f, err := strconv.ParseFloat(v.GetString(name), 64)
	if err != nil {
		return 0, &ConfigError{Variable: name, Err: err}
	}
	return f, nil
}

func parseInt(v *viper.Viper, name string) (int, error) {
	n, err := strconv.Atoi(v.GetString(name))
	if err != nil {
		return 0, &ConfigError{Variable: name, Err: err}
	}
	return n, nil
}
