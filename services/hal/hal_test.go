package hal

import (
	"strings"
	"testing"

	"pinmap-go/errcode"
	"pinmap-go/pins"
	"pinmap-go/services/hal/internal/platform"
	"pinmap-go/types"
)

func TestPlan_Devices(t *testing.T) {
	cfg := Plan(pins.Default())
	if len(cfg.Devices) != 6 {
		t.Fatalf("devices = %d, want 6", len(cfg.Devices))
	}
	byID := map[string]types.HALDevice{}
	for _, d := range cfg.Devices {
		byID[d.ID] = d
	}

	kp, ok := byID[DevKeypad].Params.(types.KeypadParams)
	if !ok || byID[DevKeypad].Type != TypeKeypad {
		t.Fatalf("keypad device = %+v", byID[DevKeypad])
	}
	if len(kp.Rows) != 4 || kp.Rows[0] != 22 || kp.Cols[3] != 36 {
		t.Fatalf("keypad pins = %v / %v", kp.Rows, kp.Cols)
	}
	if got := strings.Join(kp.Keys, ""); got != "123+456-789*.0=/" {
		t.Fatalf("keypad legends = %q", got)
	}

	if rgb := byID[DevRGB].Params.(types.RGBParams); rgb != (types.RGBParams{Red: 8, Green: 7, Blue: 6}) {
		t.Fatalf("rgb = %+v", rgb)
	}
	if env := byID[DevEnv].Params.(types.DHTParams); env.Pin != 40 || env.Model != "dht22" {
		t.Fatalf("env = %+v", env)
	}
	if light := byID[DevLight].Params.(types.PhotocellParams); light.Channel != 0 {
		t.Fatalf("light = %+v", light)
	}
	if bz := byID[DevBuzzer].Params.(types.BuzzerParams); bz.Pin != 9 {
		t.Fatalf("buzzer = %+v", bz)
	}
	lcd := byID[DevLCD].Params.(types.LCDParams)
	if lcd.RS != 12 || lcd.EN != 11 || lcd.Data != [4]types.Pin{5, 4, 3, 2} || lcd.Cols != 16 || lcd.Rows != 2 {
		t.Fatalf("lcd = %+v", lcd)
	}
}

func TestClaim_ConfiguresOutputsLow(t *testing.T) {
	f := &platform.HostPinFactory{}
	reg := NewRegistry(f)
	c, err := Claim(pins.Default(), reg)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if c.Len() != 20 {
		t.Fatalf("claimed %d pins, want 20", c.Len())
	}
	for _, n := range []int{8, 7, 6, 9} {
		p, ok := f.Get(n)
		if !ok || !p.IsOutput() || p.Get() {
			t.Fatalf("pin %d not an output driven low", n)
		}
	}
	if role, ok := reg.Owner(54); !ok || role != types.RolePhotocell {
		t.Fatalf("A0 alias owner = %q, %v", role, ok)
	}
	if role, _ := reg.Owner(40); role != types.RoleDHT {
		t.Fatalf("pin 40 owner = %q", role)
	}

	c.Release()
	if _, ok := reg.Owner(40); ok {
		t.Fatal("pin 40 still owned after Release")
	}
}

func TestClaim_Conflicts(t *testing.T) {
	reg := NewRegistry(platform.DefaultPinFactory())
	if _, err := reg.ClaimGPIO("other", int(pins.BuzzerPin)); err != nil {
		t.Fatal(err)
	}
	_, err := Claim(pins.Default(), reg)
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("Claim over a held pin: %v", err)
	}
	// Everything claimed before the failure was handed back.
	if _, ok := reg.Owner(22); ok {
		t.Fatal("keypad row left claimed after failed Claim")
	}
	if role, _ := reg.Owner(9); role != "other" {
		t.Fatalf("foreign claim disturbed: %q", role)
	}

	if _, err := reg.ClaimGPIO("x", 70); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("pin 70: %v", err)
	}
}

func TestOpen_RGB(t *testing.T) {
	reg := NewRegistry(platform.DefaultPinFactory())
	s, err := Open(pins.Default(), reg)
	if DriversSupported {
		t.Skip("host test")
	}
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for _, c := range []Color{Red, Green, Blue, Yellow, Cyan, White, Off} {
		s.RGB.Set(c)
		if got := s.RGB.Get(); got != c {
			t.Fatalf("RGB = %+v, want %+v", got, c)
		}
	}
	if _, ok := s.Key(); ok {
		t.Fatal("no keypad driver on host")
	}

	// A second station on the same registry collides on every pin.
	if _, err := Open(pins.Default(), reg); errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("second Open: %v", err)
	}
}

func TestOpen_RejectsInvalidTable(t *testing.T) {
	bad := pins.Default()
	bad.RGB.Blue = bad.RGB.Green
	_, err := Open(bad, NewRegistry(platform.DefaultPinFactory()))
	if errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("Open: %v", err)
	}
}

func TestPlatformOpenUnsupportedOnHost(t *testing.T) {
	if platform.Supported {
		t.Skip("board build")
	}
	if _, err := platform.Open(pins.Default()); errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("platform.Open: %v", err)
	}
}
