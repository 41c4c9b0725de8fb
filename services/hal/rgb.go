package hal

import (
	"pinmap-go/errcode"
	"pinmap-go/types"
)

// Color is an on/off mix of the three channels.
type Color struct{ R, G, B bool }

var (
	Off    = Color{}
	Red    = Color{R: true}
	Green  = Color{G: true}
	Blue   = Color{B: true}
	Yellow = Color{R: true, G: true}
	Cyan   = Color{G: true, B: true}
	White  = Color{R: true, G: true, B: true}
)

// RGB drives the status LED through claimed pins.
type RGB struct {
	r, g, b GPIOPin
}

// NewRGB takes the three channels from c.
func NewRGB(c *Claims) (*RGB, error) {
	r, okR := c.Pin(types.RoleRed)
	g, okG := c.Pin(types.RoleGreen)
	b, okB := c.Pin(types.RoleBlue)
	if !okR || !okG || !okB {
		return nil, errcode.New(errcode.UnknownPin, "rgb", "channels not claimed")
	}
	return &RGB{r: r, g: g, b: b}, nil
}

func (l *RGB) Set(c Color) {
	l.r.Set(c.R)
	l.g.Set(c.G)
	l.b.Set(c.B)
}

func (l *RGB) Get() Color {
	return Color{R: l.r.Get(), G: l.g.Get(), B: l.b.Get()}
}
