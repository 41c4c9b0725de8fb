package main

import (
	"testing"

	"pinmap-go/pins"
)

func TestKeyLatch(t *testing.T) {
	type poll struct {
		key   pins.Key
		ok    bool
		fires bool
	}
	seq := []poll{
		{'7', true, true},
		{'7', true, false}, // held
		{'7', true, false},
		{'+', true, true}, // different key without release
		{0, false, false}, // released
		{'+', true, true},
		{'+', true, false},
		{0, false, false},
		{0, false, false},
		{'=', true, true},
	}
	var l keyLatch
	for i, p := range seq {
		k, fired := l.Update(p.key, p.ok)
		if fired != p.fires {
			t.Fatalf("poll %d (%q,%v): fired=%v, want %v", i, p.key, p.ok, fired, p.fires)
		}
		if fired && k != p.key {
			t.Fatalf("poll %d: key %q, want %q", i, k, p.key)
		}
	}
}
