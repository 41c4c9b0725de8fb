//go:build !(tinygo && arduino_mega2560)

package platform

import (
	"pinmap-go/errcode"
	"pinmap-go/pins"
)

// Peripherals has no drivers off-board.
type Peripherals struct{}

const Supported = false

// Open reports that the peripheral drivers need the Mega target.
func Open(pins.Table) (*Peripherals, error) {
	return nil, errcode.New(errcode.Unsupported, "open", "peripheral drivers need tinygo -target=arduino-mega2560")
}

func (p *Peripherals) KeyPressed(pins.Keypad) (pins.Key, bool) { return 0, false }
