package hal

import (
	"pinmap-go/pins"
	"pinmap-go/services/hal/internal/platform"
)

// DriversSupported is true when Open also binds the peripheral drivers.
const DriversSupported = platform.Supported

// Station is one board brought up from a pin table.
type Station struct {
	Table  pins.Table
	Claims *Claims
	RGB    *RGB

	// Drivers is nil unless DriversSupported.
	Drivers *platform.Peripherals
}

// Open validates the table, claims its pins and, on the board, binds drivers.
func Open(t pins.Table, reg *Registry) (*Station, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	c, err := Claim(t, reg)
	if err != nil {
		return nil, err
	}
	rgb, err := NewRGB(c)
	if err != nil {
		c.Release()
		return nil, err
	}
	s := &Station{Table: t, Claims: c, RGB: rgb}
	if DriversSupported {
		if s.Drivers, err = platform.Open(t); err != nil {
			c.Release()
			return nil, err
		}
	}
	return s, nil
}

// Key polls the keypad once.
func (s *Station) Key() (pins.Key, bool) {
	if s.Drivers == nil {
		return 0, false
	}
	return s.Drivers.KeyPressed(s.Table.Keypad)
}

// Close releases the claimed pins.
func (s *Station) Close() { s.Claims.Release() }
