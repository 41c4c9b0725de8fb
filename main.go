package main

import (
	"context"
	"time"

	"pinmap-go/bus"
	"pinmap-go/pins"
	"pinmap-go/services/config"
	"pinmap-go/services/hal"
	"pinmap-go/services/heartbeat"
	"pinmap-go/types"
	"pinmap-go/x/conv"
)

const keyPoll = 20 * time.Millisecond

func main() {
	// Allow USB serial to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	tbl := pins.Default()
	if err := tbl.Validate(); err != nil {
		halt(err)
	}
	report(tbl)

	b := bus.NewBus(8)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, config.DeviceMegaStation)
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	st, err := hal.Open(tbl, hal.NewRegistry(hal.DefaultPinFactory()))
	if err != nil {
		halt(err)
	}
	st.RGB.Set(hal.Green)

	hb := &heartbeat.Service{Status: "pins_loaded", Interval: time.Second}
	_ = hb.Start(ctx, b.NewConnection("heartbeat"))

	var latch keyLatch
	for {
		if k, ok := latch.Update(st.Key()); ok {
			println("Info:", "key", string(rune(k)))
			if pins.IsOperator(k) {
				st.RGB.Set(hal.Blue)
			} else {
				st.RGB.Set(hal.Green)
			}
		}
		time.Sleep(keyPoll)
	}
}

// keyLatch turns keypad polls into press events: a key is reported once when
// it first appears and again only after a release or a different key.
type keyLatch struct {
	last pins.Key
	down bool
}

func (l *keyLatch) Update(k pins.Key, ok bool) (pins.Key, bool) {
	if !ok {
		l.down = false
		return 0, false
	}
	if l.down && k == l.last {
		return 0, false
	}
	l.last, l.down = k, true
	return k, true
}

func report(t pins.Table) {
	var buf [4]byte
	for _, b := range t.Bindings() {
		prefix := byte('D')
		if b.Kind == types.KindAnalog {
			prefix = 'A'
		}
		println("Info:", string(b.Role), string(conv.Label(buf[:], prefix, b.Number)))
	}
	println("Info:", "keypad", pins.Sequence())
}

func halt(err error) {
	for {
		println("Error:", err.Error())
		time.Sleep(time.Second)
	}
}
