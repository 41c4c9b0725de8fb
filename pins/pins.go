// Package pins is the wiring table of the keypad calculator and environment
// station: which Arduino Mega header pin serves which role, and which legend is
// printed on each keypad button.
//
// Everything here is fixed at build time. Array-valued entries are exposed
// through accessors that return copies, so consumers cannot alter the table.
package pins

import (
	"pinmap-go/types"

	"tinygo.org/x/drivers/dht"
)

type (
	Pin    = types.Pin
	Analog = types.Analog
)

// Key is the legend printed on a keypad button.
type Key byte

// Keypad geometry.
const (
	KeypadRows = 4
	KeypadCols = 4
)

var (
	rowPins = [...]Pin{22, 24, 26, 28}
	colPins = [...]Pin{30, 32, 34, 36}

	keys = [...][KeypadCols]Key{
		{'1', '2', '3', '+'},
		{'4', '5', '6', '-'},
		{'7', '8', '9', '*'},
		{'.', '0', '=', '/'},
	}
)

// Fail the build if a sequence does not match the declared geometry.
var (
	_ [KeypadRows]Pin             = rowPins
	_ [KeypadCols]Pin             = colPins
	_ [KeypadRows][KeypadCols]Key = keys
)

// RGB indicator channels.
const (
	RedPin   Pin = 8
	GreenPin Pin = 7
	BluePin  Pin = 6
)

// Analog channel names as printed on the header.
const (
	A0 Analog = iota
	A1
	A2
	A3
)

// Environment sensors and alert.
const (
	DHTPin       Pin    = 40
	DHTType             = dht.DHT22
	PhotocellPin Analog = A0
	BuzzerPin    Pin    = 9
)

// Character LCD in 4-bit mode.
const (
	LCDRS Pin = 12
	LCDEN Pin = 11
	LCDD4 Pin = 5
	LCDD5 Pin = 4
	LCDD6 Pin = 3
	LCDD7 Pin = 2
)

// LCD geometry of the fitted 1602 module.
const (
	LCDWidth  = 16
	LCDHeight = 2
)

// Rows returns the keypad row pins, index = row.
func Rows() [KeypadRows]Pin { return rowPins }

// Cols returns the keypad column pins, index = column.
func Cols() [KeypadCols]Pin { return colPins }

// KeyMatrix returns the keypad legends, row-major.
func KeyMatrix() [KeypadRows][KeypadCols]Key { return keys }
