//go:build tinygo && arduino_mega2560

package platform

import (
	"machine"

	"pinmap-go/services/hal/internal/core"
)

// Arduino header numbering to AVR port pins.
var digitalPins = [...]machine.Pin{
	machine.D0, machine.D1, machine.D2, machine.D3, machine.D4,
	machine.D5, machine.D6, machine.D7, machine.D8, machine.D9,
	machine.D10, machine.D11, machine.D12, machine.D13, machine.D14,
	machine.D15, machine.D16, machine.D17, machine.D18, machine.D19,
	machine.D20, machine.D21, machine.D22, machine.D23, machine.D24,
	machine.D25, machine.D26, machine.D27, machine.D28, machine.D29,
	machine.D30, machine.D31, machine.D32, machine.D33, machine.D34,
	machine.D35, machine.D36, machine.D37, machine.D38, machine.D39,
	machine.D40, machine.D41, machine.D42, machine.D43, machine.D44,
	machine.D45, machine.D46, machine.D47, machine.D48, machine.D49,
	machine.D50, machine.D51, machine.D52, machine.D53,
}

var analogPins = [...]machine.Pin{
	machine.A0, machine.A1, machine.A2, machine.A3,
	machine.A4, machine.A5, machine.A6, machine.A7,
	machine.A8, machine.A9, machine.A10, machine.A11,
	machine.A12, machine.A13, machine.A14, machine.A15,
}

// Digital maps an Arduino number (D0..D69, analog inputs from 54) to a machine.Pin.
func Digital(n int) (machine.Pin, bool) {
	switch {
	case n < 0:
		return machine.NoPin, false
	case n < len(digitalPins):
		return digitalPins[n], true
	case n < len(digitalPins)+len(analogPins):
		return analogPins[n-len(digitalPins)], true
	}
	return machine.NoPin, false
}

// AnalogInput maps an analog channel to its machine.Pin.
func AnalogInput(ch int) (machine.Pin, bool) {
	if ch < 0 || ch >= len(analogPins) {
		return machine.NoPin, false
	}
	return analogPins[ch], true
}

type megaPinFactory struct{}

type megaPin struct {
	p machine.Pin
	n int
}

func (megaPinFactory) ByNumber(n int) (core.GPIOPin, bool) {
	p, ok := Digital(n)
	if !ok {
		return nil, false
	}
	return &megaPin{p: p, n: n}, true
}

func (m *megaPin) ConfigureInput(pull core.Pull) error {
	mode := machine.PinInput
	if pull == core.PullUp {
		mode = machine.PinInputPullup
	}
	m.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (m *megaPin) ConfigureOutput(initial bool) error {
	m.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	m.p.Set(initial)
	return nil
}

func (m *megaPin) Set(b bool)  { m.p.Set(b) }
func (m *megaPin) Get() bool   { return m.p.Get() }
func (m *megaPin) Toggle()     { m.p.Set(!m.p.Get()) }
func (m *megaPin) Number() int { return m.n }

// DefaultPinFactory provides the board GPIO factory.
func DefaultPinFactory() core.PinFactory { return megaPinFactory{} }
