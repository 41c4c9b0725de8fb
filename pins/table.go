package pins

import (
	"pinmap-go/types"

	"tinygo.org/x/drivers/dht"
)

// Keypad is the matrix wiring plus the legend grid.
type Keypad struct {
	Rows [KeypadRows]Pin
	Cols [KeypadCols]Pin
	Keys [KeypadRows][KeypadCols]Key
}

// RGBPins are the three channels of the status LED.
type RGBPins struct {
	Red, Green, Blue Pin
}

// Triple returns (red, green, blue).
func (r RGBPins) Triple() [3]Pin { return [3]Pin{r.Red, r.Green, r.Blue} }

// EnvPins are the ambient sensors.
type EnvPins struct {
	DHT       Pin
	DHTType   dht.DeviceType
	Photocell Analog
}

// LCDPins drive a character display with a 4-bit data bus.
type LCDPins struct {
	RS, EN         Pin
	D4, D5, D6, D7 Pin
}

// Sextuple returns (rs, en, d4, d5, d6, d7).
func (l LCDPins) Sextuple() [6]Pin {
	return [6]Pin{l.RS, l.EN, l.D4, l.D5, l.D6, l.D7}
}

// Data returns D4..D7 in bus order.
func (l LCDPins) Data() [4]Pin { return [4]Pin{l.D4, l.D5, l.D6, l.D7} }

// Table is the complete wiring of one station.
type Table struct {
	Keypad Keypad
	RGB    RGBPins
	Env    EnvPins
	Buzzer Pin
	LCD    LCDPins
}

// Default returns the station wiring.
func Default() Table {
	return Table{
		Keypad: Keypad{Rows: rowPins, Cols: colPins, Keys: keys},
		RGB:    RGBPins{Red: RedPin, Green: GreenPin, Blue: BluePin},
		Env:    EnvPins{DHT: DHTPin, DHTType: DHTType, Photocell: PhotocellPin},
		Buzzer: BuzzerPin,
		LCD: LCDPins{
			RS: LCDRS, EN: LCDEN,
			D4: LCDD4, D5: LCDD5, D6: LCDD6, D7: LCDD7,
		},
	}
}

func digital(r types.Role, p Pin, d types.Direction) types.Binding {
	return types.Binding{Role: r, Kind: types.KindDigital, Number: uint8(p), Dir: d}
}

// Bindings flattens the table, in declaration order.
func (t Table) Bindings() []types.Binding {
	out := make([]types.Binding, 0, KeypadRows+KeypadCols+3+3+6)
	for i, p := range t.Keypad.Rows {
		out = append(out, digital(types.KeypadRowRole(i), p, types.DirOutput))
	}
	for i, p := range t.Keypad.Cols {
		out = append(out, digital(types.KeypadColRole(i), p, types.DirInput))
	}
	out = append(out,
		digital(types.RoleRed, t.RGB.Red, types.DirOutput),
		digital(types.RoleGreen, t.RGB.Green, types.DirOutput),
		digital(types.RoleBlue, t.RGB.Blue, types.DirOutput),
		digital(types.RoleDHT, t.Env.DHT, types.DirBidi),
		types.Binding{Role: types.RolePhotocell, Kind: types.KindAnalog, Number: uint8(t.Env.Photocell), Dir: types.DirInput},
		digital(types.RoleBuzzer, t.Buzzer, types.DirOutput),
		digital(types.RoleLCDRS, t.LCD.RS, types.DirOutput),
		digital(types.RoleLCDEN, t.LCD.EN, types.DirOutput),
		digital(types.RoleLCDD4, t.LCD.D4, types.DirOutput),
		digital(types.RoleLCDD5, t.LCD.D5, types.DirOutput),
		digital(types.RoleLCDD6, t.LCD.D6, types.DirOutput),
		digital(types.RoleLCDD7, t.LCD.D7, types.DirOutput),
	)
	return out
}

// Lookup finds the binding for a role.
func (t Table) Lookup(r types.Role) (types.Binding, bool) {
	for _, b := range t.Bindings() {
		if b.Role == r {
			return b, true
		}
	}
	return types.Binding{}, false
}

// DHTModel names the sensor type for config payloads.
func DHTModel(d dht.DeviceType) string {
	switch d {
	case dht.DHT11:
		return "dht11"
	case dht.DHT22:
		return "dht22"
	default:
		return "unknown"
	}
}
