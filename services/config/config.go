package config

import (
	"context"

	"pinmap-go/bus"
	"pinmap-go/errcode"
	"pinmap-go/pins"
	"pinmap-go/types"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	pinsToken    = "pins"
	CtxDeviceKey = "device" // context key used for device ID
)

// Pin groups published under config/pins/<group>.
const (
	GroupKeypad = "keypad"
	GroupRGB    = "rgb"
	GroupEnv    = "env"
	GroupBuzzer = "buzzer"
	GroupLCD    = "lcd"
)

// TopicPins is the retained topic of one pin group.
func TopicPins(group string) bus.Topic { return bus.T(configPrefix, pinsToken, group) }

// TopicHeartbeat carries {"interval": seconds}.
func TopicHeartbeat() bus.Topic { return bus.T(configPrefix, "heartbeat") }

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) (Device, bool) {
	d, ok := embeddedConfigs[device]
	return d, ok
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// Publish resolves the device config named in ctx, validates its pin table and
// publishes every group as a retained message.
func (s *ConfigService) Publish(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errcode.New(errcode.InvalidParams, "config", "missing device ID in context")
	}
	cfg, ok := EmbeddedConfigLookup(device)
	if !ok {
		return errcode.New(errcode.InvalidParams, "config", "no embedded config for device: "+device)
	}
	if err := cfg.Pins.Validate(); err != nil {
		return err
	}

	for _, g := range Groups(cfg.Pins) {
		conn.PublishRetained(TopicPins(g.Group), g)
	}
	if cfg.HeartbeatSeconds > 0 {
		conn.PublishRetained(TopicHeartbeat(), map[string]any{
			"interval": float64(cfg.HeartbeatSeconds),
		})
	}
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.Publish(ctx, conn); err != nil {
			println("Error:", "config:", err.Error())
		}
	}()
}

// Groups splits a table into its retained payloads.
func Groups(t pins.Table) []types.PinGroup {
	all := t.Bindings()
	pick := func(roles ...types.Role) []types.Binding {
		out := make([]types.Binding, 0, len(roles))
		for _, r := range roles {
			for _, b := range all {
				if b.Role == r {
					out = append(out, b)
				}
			}
		}
		return out
	}

	var keypad []types.Role
	for i := 0; i < pins.KeypadRows; i++ {
		keypad = append(keypad, types.KeypadRowRole(i))
	}
	for i := 0; i < pins.KeypadCols; i++ {
		keypad = append(keypad, types.KeypadColRole(i))
	}
	legends := make([]string, pins.KeypadRows)
	for r := range legends {
		legends[r] = t.Keypad.RowString(r)
	}

	return []types.PinGroup{
		{Group: GroupKeypad, Bindings: pick(keypad...), Detail: legends},
		{Group: GroupRGB, Bindings: pick(types.RoleRed, types.RoleGreen, types.RoleBlue)},
		{Group: GroupEnv, Bindings: pick(types.RoleDHT, types.RolePhotocell), Detail: pins.DHTModel(t.Env.DHTType)},
		{Group: GroupBuzzer, Bindings: pick(types.RoleBuzzer)},
		{
			Group:    GroupLCD,
			Bindings: pick(types.RoleLCDRS, types.RoleLCDEN, types.RoleLCDD4, types.RoleLCDD5, types.RoleLCDD6, types.RoleLCDD7),
			Detail:   [2]int{pins.LCDWidth, pins.LCDHeight},
		},
	}
}
