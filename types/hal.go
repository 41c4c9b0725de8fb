package types

// ------------------------
// HAL configuration
// ------------------------

type HALConfig struct {
	Devices []HALDevice `json:"devices"`
}

type HALDevice struct {
	ID     string `json:"id"`     // logical device id
	Type   string `json:"type"`   // e.g. "keypad4x4"
	Params any    `json:"params"` // one of the *Params types below
}

// ------------------------
// Device params
// ------------------------

type KeypadParams struct {
	Rows []Pin    `json:"rows"`
	Cols []Pin    `json:"cols"`
	Keys []string `json:"keys"` // one string per row, row-major
}

type RGBParams struct {
	Red   Pin `json:"red"`
	Green Pin `json:"green"`
	Blue  Pin `json:"blue"`
}

type DHTParams struct {
	Pin   Pin    `json:"pin"`
	Model string `json:"model"` // "dht11" | "dht22"
}

type PhotocellParams struct {
	Channel Analog `json:"channel"`
}

type BuzzerParams struct {
	Pin Pin `json:"pin"`
}

type LCDParams struct {
	RS   Pin    `json:"rs"`
	EN   Pin    `json:"en"`
	Data [4]Pin `json:"data"` // D4..D7
	Cols uint8  `json:"cols"`
	Rows uint8  `json:"rows"`
}

// ------------------------
// State
// ------------------------

type HALState struct {
	Level  string `json:"level"`  // "idle", "ready", "stopped"
	Status string `json:"status"` // freeform short code
	TS     int64  `json:"ts_ns"`
}
