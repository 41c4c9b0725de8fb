//go:build tinygo && arduino_mega2560

package platform

import (
	"machine"

	"pinmap-go/errcode"
	"pinmap-go/pins"

	"tinygo.org/x/drivers/buzzer"
	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/hd44780"
	"tinygo.org/x/drivers/keypad4x4"
)

// Peripherals are the driver instances parameterized by a pin table.
type Peripherals struct {
	Keypad keypad4x4.Device
	LCD    hd44780.Device
	Env    dht.Device
	Light  machine.ADC
	Buzzer buzzer.Device
}

// Supported reports whether Open can bind drivers on this target.
const Supported = true

func pin(op string, p pins.Pin) (machine.Pin, error) {
	mp, ok := Digital(int(p))
	if !ok {
		return machine.NoPin, errcode.New(errcode.UnknownPin, op, "no such header pin")
	}
	return mp, nil
}

func pinsOf(op string, ps ...pins.Pin) ([]machine.Pin, error) {
	out := make([]machine.Pin, len(ps))
	for i, p := range ps {
		mp, err := pin(op, p)
		if err != nil {
			return nil, err
		}
		out[i] = mp
	}
	return out, nil
}

// Open constructs and configures every driver named by the table.
func Open(t pins.Table) (*Peripherals, error) {
	var p Peripherals

	// keypad4x4 keeps its arguments in order, so its row/column indices are ours.
	kp := t.Keypad
	lines, err := pinsOf("keypad",
		kp.Rows[0], kp.Rows[1], kp.Rows[2], kp.Rows[3],
		kp.Cols[0], kp.Cols[1], kp.Cols[2], kp.Cols[3])
	if err != nil {
		return nil, err
	}
	p.Keypad = keypad4x4.NewDevice(lines[0], lines[1], lines[2], lines[3], lines[4], lines[5], lines[6], lines[7])
	p.Keypad.Configure()

	data := t.LCD.Data()
	dl, err := pinsOf("lcd", data[:]...)
	if err != nil {
		return nil, err
	}
	ctl, err := pinsOf("lcd", t.LCD.EN, t.LCD.RS)
	if err != nil {
		return nil, err
	}
	p.LCD, err = hd44780.NewGPIO4Bit(dl, ctl[0], ctl[1], machine.NoPin)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lcd", Err: err}
	}
	if err := p.LCD.Configure(hd44780.Config{Width: pins.LCDWidth, Height: pins.LCDHeight}); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "lcd", Err: err}
	}

	dp, err := pin("dht", t.Env.DHT)
	if err != nil {
		return nil, err
	}
	p.Env = dht.New(dp, t.Env.DHTType)

	ap, ok := AnalogInput(int(t.Env.Photocell))
	if !ok {
		return nil, errcode.New(errcode.UnknownPin, "photocell", "no such analog channel")
	}
	machine.InitADC()
	p.Light = machine.ADC{Pin: ap}
	p.Light.Configure(machine.ADCConfig{})

	bp, err := pin("buzzer", t.Buzzer)
	if err != nil {
		return nil, err
	}
	bp.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Buzzer = buzzer.New(bp)

	return &p, nil
}

// KeyPressed polls the keypad once and returns the legend, if any.
func (p *Peripherals) KeyPressed(kp pins.Keypad) (pins.Key, bool) {
	return kp.KeyForCode(p.Keypad.GetKey())
}
