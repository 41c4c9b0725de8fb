package hal

import (
	"pinmap-go/pins"
	"pinmap-go/types"
)

// Device ids and driver types of the station.
const (
	DevKeypad = "keypad"
	DevRGB    = "rgb"
	DevEnv    = "env"
	DevLight  = "light"
	DevBuzzer = "buzzer"
	DevLCD    = "lcd"

	TypeKeypad    = "keypad4x4"
	TypeRGB       = "rgb_led"
	TypeDHT       = "dht"
	TypePhotocell = "photocell"
	TypeBuzzer    = "buzzer"
	TypeLCD       = "hd44780"
)

// Plan derives the declarative device list from a pin table.
func Plan(t pins.Table) types.HALConfig {
	kp := types.KeypadParams{
		Rows: append([]types.Pin(nil), t.Keypad.Rows[:]...),
		Cols: append([]types.Pin(nil), t.Keypad.Cols[:]...),
	}
	for r := 0; r < pins.KeypadRows; r++ {
		kp.Keys = append(kp.Keys, t.Keypad.RowString(r))
	}

	return types.HALConfig{
		Devices: []types.HALDevice{
			{ID: DevKeypad, Type: TypeKeypad, Params: kp},
			{ID: DevRGB, Type: TypeRGB, Params: types.RGBParams{Red: t.RGB.Red, Green: t.RGB.Green, Blue: t.RGB.Blue}},
			{ID: DevEnv, Type: TypeDHT, Params: types.DHTParams{Pin: t.Env.DHT, Model: pins.DHTModel(t.Env.DHTType)}},
			{ID: DevLight, Type: TypePhotocell, Params: types.PhotocellParams{Channel: t.Env.Photocell}},
			{ID: DevBuzzer, Type: TypeBuzzer, Params: types.BuzzerParams{Pin: t.Buzzer}},
			{ID: DevLCD, Type: TypeLCD, Params: types.LCDParams{
				RS: t.LCD.RS, EN: t.LCD.EN, Data: t.LCD.Data(),
				Cols: pins.LCDWidth, Rows: pins.LCDHeight,
			}},
		},
	}
}
