package config

import "pinmap-go/pins"

// Device is the compiled-in configuration of one board.
type Device struct {
	Pins             pins.Table
	HeartbeatSeconds int
}

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// -----------------------------------------------------------------------------

const DeviceMegaStation = "mega_station"

var embeddedConfigs = map[string]Device{
	DeviceMegaStation: {
		Pins:             pins.Default(),
		HeartbeatSeconds: 2,
	},
}
