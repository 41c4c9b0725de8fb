package hal

import (
	"sync"

	"pinmap-go/errcode"
	"pinmap-go/pins"
	"pinmap-go/services/hal/internal/core"
	"pinmap-go/services/hal/internal/platform"
	"pinmap-go/types"
	"pinmap-go/x/conv"
)

type (
	GPIOPin    = core.GPIOPin
	PinFactory = core.PinFactory
)

// DefaultPinFactory returns the GPIO factory for the build target.
func DefaultPinFactory() PinFactory { return platform.DefaultPinFactory() }

// Registry tracks which role owns each physical pin across claims.
type Registry struct {
	mu    sync.Mutex
	f     PinFactory
	owner map[int]types.Role
}

func NewRegistry(f PinFactory) *Registry {
	return &Registry{f: f, owner: make(map[int]types.Role)}
}

// ClaimGPIO reserves pin n for role.
func (r *Registry) ClaimGPIO(role types.Role, n int) (GPIOPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, busy := r.owner[n]; busy {
		return nil, &errcode.E{C: errcode.PinInUse, Op: "claim", Msg: string(role) + " wants pin " + itoa(n) + " held by " + string(prev)}
	}
	p, ok := r.f.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "claim", Msg: string(role) + " on pin " + itoa(n)}
	}
	r.owner[n] = role
	return p, nil
}

// ReleaseGPIO frees pin n if role holds it.
func (r *Registry) ReleaseGPIO(role types.Role, n int) {
	r.mu.Lock()
	if r.owner[n] == role {
		delete(r.owner, n)
	}
	r.mu.Unlock()
}

// Owner reports the role holding pin n.
func (r *Registry) Owner(n int) (types.Role, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	role, ok := r.owner[n]
	return role, ok
}

// Claims are the pins of one table, held until Release.
type Claims struct {
	reg  *Registry
	pins map[types.Role]GPIOPin
	nums map[types.Role]int
}

// Claim reserves every pin of the table. Outputs that have no driver of
// their own (RGB channels, buzzer) are configured and driven low. On error
// nothing stays claimed.
func Claim(t pins.Table, reg *Registry) (*Claims, error) {
	c := &Claims{
		reg:  reg,
		pins: make(map[types.Role]GPIOPin),
		nums: make(map[types.Role]int),
	}
	for _, b := range t.Bindings() {
		n := int(b.Physical())
		p, err := reg.ClaimGPIO(b.Role, n)
		if err != nil {
			c.Release()
			return nil, err
		}
		c.pins[b.Role] = p
		c.nums[b.Role] = n
	}
	for _, r := range []types.Role{types.RoleRed, types.RoleGreen, types.RoleBlue, types.RoleBuzzer} {
		if err := c.pins[r].ConfigureOutput(false); err != nil {
			c.Release()
			return nil, &errcode.E{C: errcode.Error, Op: "configure", Msg: string(r), Err: err}
		}
	}
	return c, nil
}

// Pin returns the claimed pin of a role.
func (c *Claims) Pin(r types.Role) (GPIOPin, bool) {
	p, ok := c.pins[r]
	return p, ok
}

// Len is the number of claimed pins.
func (c *Claims) Len() int { return len(c.pins) }

// Release returns every pin to the registry.
func (c *Claims) Release() {
	for r, n := range c.nums {
		c.reg.ReleaseGPIO(r, n)
	}
	c.pins = map[types.Role]GPIOPin{}
	c.nums = map[types.Role]int{}
}

func itoa(n int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(n)))
}
