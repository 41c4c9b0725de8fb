// cmd/boardtest/main.go
package main

import (
	"context"
	"time"

	"pinmap-go/bus"
	"pinmap-go/pins"
	"pinmap-go/services/config"
	"pinmap-go/services/hal"
	"pinmap-go/types"
)

// ---------- Configuration ----------

const (
	configTimeout = 2 * time.Second

	// Sequencing timing
	colourDwell = 500 * time.Millisecond
	keyWindow   = 10 * time.Second
	keyPoll     = 20 * time.Millisecond

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

var colourSeq = []hal.Color{hal.Red, hal.Green, hal.Blue, hal.White, hal.Off}

// ---------- Helpers ----------

// waitGroups blocks until every pin group is retained on the bus.
func waitGroups(b *bus.Bus, d time.Duration) bool {
	groups := []string{config.GroupKeypad, config.GroupRGB, config.GroupEnv, config.GroupBuzzer, config.GroupLCD}
	dead := time.Now().Add(d)
	for time.Now().Before(dead) {
		missing := 0
		for _, g := range groups {
			if _, ok := b.Retained(config.TopicPins(g)); !ok {
				missing++
			}
		}
		if missing == 0 {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func printGroups(b *bus.Bus) {
	for _, g := range []string{config.GroupKeypad, config.GroupRGB, config.GroupEnv, config.GroupBuzzer, config.GroupLCD} {
		m, ok := b.Retained(config.TopicPins(g))
		if !ok {
			continue
		}
		pg := m.Payload.(types.PinGroup)
		for _, bd := range pg.Bindings {
			println("[boardtest]", pg.Group, string(bd.Role), int(bd.Number), string(bd.Dir))
		}
	}
}

// keyWalk asks for every key in scan order and reports the ones seen.
func keyWalk(st *hal.Station) (seen int) {
	want := pins.Sequence()
	println("[boardtest] press keys in order:", want)
	dead := time.Now().Add(keyWindow)
	for seen < len(want) && time.Now().Before(dead) {
		k, ok := st.Key()
		if ok && byte(k) == want[seen] {
			println("[boardtest] ok", string(rune(k)))
			seen++
		}
		time.Sleep(keyPoll)
	}
	return seen
}

// ---------- Main ----------

func main() {
	time.Sleep(2 * time.Second)

	b := bus.NewBus(8)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, config.DeviceMegaStation)
	config.NewConfigService().Start(ctx, b.NewConnection("config"))
	if !waitGroups(b, configTimeout) {
		println("[boardtest] pin config not published; table invalid?")
	}
	printGroups(b)

	st, err := hal.Open(pins.Default(), hal.NewRegistry(hal.DefaultPinFactory()))
	if err != nil {
		for {
			println("[boardtest] open failed:", err.Error())
			time.Sleep(time.Second)
		}
	}

	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		println("[boardtest] cycle", cycle)
		for _, c := range colourSeq {
			st.RGB.Set(c)
			time.Sleep(colourDwell)
		}
		if !hal.DriversSupported {
			continue
		}
		n := keyWalk(st)
		if n == pins.KeypadRows*pins.KeypadCols {
			st.RGB.Set(hal.Green)
			println("[boardtest] keypad PASS")
		} else {
			st.RGB.Set(hal.Red)
			println("[boardtest] keypad FAIL at", n)
		}
		time.Sleep(colourDwell)
	}
}
