package heartbeat

import (
	"context"
	"testing"
	"time"

	"pinmap-go/bus"
	"pinmap-go/services/config"
	"pinmap-go/types"
)

func nextState(t *testing.T, sub *bus.Subscription, d time.Duration) types.HALState {
	t.Helper()
	select {
	case m := <-sub.Channel():
		st, ok := m.Payload.(types.HALState)
		if !ok {
			t.Fatalf("payload %T", m.Payload)
		}
		return st
	case <-time.After(d):
		t.Fatal("no heartbeat state")
	}
	return types.HALState{}
}

func TestHeartbeat_TicksAndStops(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("hb")
	obs := b.NewConnection("obs")
	sub := obs.Subscribe(TopicState)

	ctx, cancel := context.WithCancel(context.Background())
	svc := &Service{Status: "pins_loaded", Interval: 10 * time.Millisecond}
	_ = svc.Start(ctx, conn)

	st := nextState(t, sub, 500*time.Millisecond)
	if st.Level != "ready" || st.Status != "pins_loaded" {
		t.Fatalf("state = %+v", st)
	}

	cancel()
	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case m := <-sub.Channel():
			if m.Payload.(types.HALState).Level == "stopped" {
				return
			}
		case <-deadline:
			t.Fatal("no stopped state after cancel")
		}
	}
}

func TestHeartbeat_IntervalFromConfig(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("hb")
	obs := b.NewConnection("obs")

	// A long starting interval; the retained config shortens it.
	conn.PublishRetained(config.TopicHeartbeat(), map[string]any{"interval": 0.01})
	sub := obs.Subscribe(TopicState)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	_ = (&Service{Status: "x", Interval: time.Hour}).Start(ctx, conn)

	nextState(t, sub, time.Second)
}
