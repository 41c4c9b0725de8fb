package pins

import (
	"pinmap-go/errcode"
	"pinmap-go/types"
	"pinmap-go/x/conv"
)

// Header limits of the Arduino Mega 2560. Analog inputs are also digital
// pins D54..D69, so a digital role may sit on them.
const (
	MaxAnalog  Analog = 15
	MaxDigital Pin    = types.AnalogDigitalBase + Pin(MaxAnalog)
)

const opValidate = "validate"

// Validate checks the table for wiring regressions: short legend rows,
// duplicate legends, pins off the header and two roles sharing a pin.
// Analog channels are checked through their digital alias as well.
func (t Table) Validate() error {
	if err := t.Keypad.validate(); err != nil {
		return err
	}

	owner := make(map[Pin]types.Role, 32)
	for _, b := range t.Bindings() {
		if err := checkRange(b); err != nil {
			return err
		}
		p := b.Physical()
		if prev, dup := owner[p]; dup {
			return &errcode.E{
				C:   errcode.PinInUse,
				Op:  opValidate,
				Msg: string(prev) + " and " + string(b.Role) + " share pin " + itoa(int(p)),
			}
		}
		owner[p] = b.Role
	}
	return nil
}

// Validate checks the station table.
func Validate() error { return Default().Validate() }

func (k Keypad) validate() error {
	seen := make(map[Key]bool, KeypadRows*KeypadCols)
	for r := range k.Keys {
		for c, v := range k.Keys[r] {
			if v == 0 {
				return errcode.New(errcode.BadDimensions, opValidate,
					"keypad row "+itoa(r)+" has "+itoa(c)+" legends, want "+itoa(KeypadCols))
			}
			if seen[v] {
				return errcode.New(errcode.InvalidParams, opValidate,
					"duplicate legend "+string(rune(v)))
			}
			seen[v] = true
		}
	}
	return nil
}

func checkRange(b types.Binding) error {
	switch b.Kind {
	case types.KindAnalog:
		if Analog(b.Number) > MaxAnalog {
			return errcode.New(errcode.UnknownPin, opValidate, string(b.Role)+" on "+label('A', b.Number))
		}
	default:
		if Pin(b.Number) > MaxDigital {
			return errcode.New(errcode.UnknownPin, opValidate, string(b.Role)+" on "+label('D', b.Number))
		}
	}
	return nil
}

func itoa(n int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(n)))
}

func label(prefix byte, n uint8) string {
	var buf [4]byte
	return string(conv.Label(buf[:], prefix, n))
}
