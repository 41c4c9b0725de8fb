package heartbeat

import (
	"context"
	"time"

	"pinmap-go/bus"
	"pinmap-go/services/config"
	"pinmap-go/types"
)

// TopicState carries the retained liveness state.
var TopicState = bus.T("heartbeat", "state")

// Service prints a liveness line and republishes the station state on every tick.
type Service struct {
	// Status is reported in every beat, e.g. "pins_loaded".
	Status string
	// Interval is the starting period; config/heartbeat overrides it.
	Interval time.Duration
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(config.TopicHeartbeat())
	defer conn.Unsubscribe(cfgSub)

	iv := s.Interval
	if iv <= 0 {
		iv = time.Second
	}
	tick := time.NewTicker(iv)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			conn.PublishRetained(TopicState, types.HALState{Level: "stopped", Status: s.Status, TS: time.Now().UnixNano()})
			return
		case t := <-tick.C:
			println("Info:", t.Format("15:04:05"), "Heartbeat", s.Status)
			conn.PublishRetained(TopicState, types.HALState{Level: "ready", Status: s.Status, TS: t.UnixNano()})
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			if m, ok := msg.Payload.(map[string]any); ok {
				if interval, ok := m["interval"].(float64); ok && interval > 0 {
					tick.Reset(time.Duration(interval * float64(time.Second)))
					println("Info:", "Heartbeat interval set to", interval, "seconds")
				}
			}
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
