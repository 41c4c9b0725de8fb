package types

// ------------------------
// Pin numbering
// ------------------------

// Pin is an Arduino digital pin number (D0..D53 on a Mega).
type Pin uint8

// Analog is an analog input channel (A0..A15 on a Mega).
type Analog uint8

// Mega analog channels double as digital pins D54..D69.
const AnalogDigitalBase Pin = 54

// Digital returns the digital alias of an analog channel.
func (a Analog) Digital() Pin { return AnalogDigitalBase + Pin(a) }

// PinKind tells which numbering space a binding lives in.
type PinKind string

const (
	KindDigital PinKind = "digital"
	KindAnalog  PinKind = "analog"
)

// Direction is the electrical role a consumer gives the pin.
type Direction string

const (
	DirOutput Direction = "output"
	DirInput  Direction = "input"
	DirBidi   Direction = "bidi" // single-wire sensors drive and sample the same line
)

// ------------------------
// Roles
// ------------------------

// Role names a logical use of a physical pin.
type Role string

const (
	RoleKeypadRow0 Role = "keypad_row0"
	RoleKeypadRow1 Role = "keypad_row1"
	RoleKeypadRow2 Role = "keypad_row2"
	RoleKeypadRow3 Role = "keypad_row3"
	RoleKeypadCol0 Role = "keypad_col0"
	RoleKeypadCol1 Role = "keypad_col1"
	RoleKeypadCol2 Role = "keypad_col2"
	RoleKeypadCol3 Role = "keypad_col3"

	RoleRed   Role = "led_red"
	RoleGreen Role = "led_green"
	RoleBlue  Role = "led_blue"

	RoleDHT       Role = "dht"
	RolePhotocell Role = "photocell"
	RoleBuzzer    Role = "buzzer"

	RoleLCDRS Role = "lcd_rs"
	RoleLCDEN Role = "lcd_en"
	RoleLCDD4 Role = "lcd_d4"
	RoleLCDD5 Role = "lcd_d5"
	RoleLCDD6 Role = "lcd_d6"
	RoleLCDD7 Role = "lcd_d7"
)

// KeypadRowRole and KeypadColRole name the i-th keypad line.
func KeypadRowRole(i int) Role { return Role("keypad_row" + string(rune('0'+i))) }
func KeypadColRole(i int) Role { return Role("keypad_col" + string(rune('0'+i))) }

// Binding ties one role to one pin.
type Binding struct {
	Role   Role      `json:"role"`
	Kind   PinKind   `json:"kind"`
	Number uint8     `json:"number"`
	Dir    Direction `json:"dir"`
}

// Physical returns the digital pin the binding occupies on the header.
func (b Binding) Physical() Pin {
	if b.Kind == KindAnalog {
		return Analog(b.Number).Digital()
	}
	return Pin(b.Number)
}

// PinGroup is the retained payload for config/pins/<group>.
type PinGroup struct {
	Group    string    `json:"group"`
	Bindings []Binding `json:"bindings"`
	Detail   any       `json:"detail,omitempty"`
}
