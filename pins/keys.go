package pins

// NoKey is the code a 4x4 keypad driver reports when nothing is pressed.
const NoKey uint8 = 255

// KeyAt returns the legend at (row, col).
func (k Keypad) KeyAt(row, col int) (Key, bool) {
	if row < 0 || row >= KeypadRows || col < 0 || col >= KeypadCols {
		return 0, false
	}
	return k.Keys[row][col], true
}

// KeyForCode translates a row-major key code (row*KeypadCols+col) into its legend.
func (k Keypad) KeyForCode(code uint8) (Key, bool) {
	if code == NoKey || int(code) >= KeypadRows*KeypadCols {
		return 0, false
	}
	return k.KeyAt(int(code)/KeypadCols, int(code)%KeypadCols)
}

// Position is the inverse of KeyAt.
func (k Keypad) Position(key Key) (row, col int, ok bool) {
	for r := range k.Keys {
		for c, v := range k.Keys[r] {
			if v == key {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Sequence returns the legends in scan order.
func (k Keypad) Sequence() string {
	b := make([]byte, 0, KeypadRows*KeypadCols)
	for r := range k.Keys {
		for _, v := range k.Keys[r] {
			b = append(b, byte(v))
		}
	}
	return string(b)
}

// RowString returns one row of legends, e.g. "123+".
func (k Keypad) RowString(row int) string {
	if row < 0 || row >= KeypadRows {
		return ""
	}
	b := make([]byte, KeypadCols)
	for c, v := range k.Keys[row] {
		b[c] = byte(v)
	}
	return string(b)
}

// Package-level lookups over the station keypad.

func KeyAt(row, col int) (Key, bool) { return defaultKeypad().KeyAt(row, col) }
func KeyForCode(code uint8) (Key, bool) { return defaultKeypad().KeyForCode(code) }
func Position(key Key) (row, col int, ok bool) { return defaultKeypad().Position(key) }
func Sequence() string { return defaultKeypad().Sequence() }

func defaultKeypad() Keypad { return Keypad{Rows: rowPins, Cols: colPins, Keys: keys} }

// Legend classes.
const (
	KeyDecimal Key = '.'
	KeyEquals  Key = '='
)

// IsDigit reports whether k is 0-9.
func IsDigit(k Key) bool { return k >= '0' && k <= '9' }

// IsOperator reports whether k is an arithmetic operator or equals.
func IsOperator(k Key) bool {
	switch k {
	case '+', '-', '*', '/', KeyEquals:
		return true
	}
	return false
}
