package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TestPumpEventsStopsAfterFini verifies the event pump forwards screen
// events and exits, closing its channel, once the screen is finalized.
func TestPumpEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	events := make(chan tcell.Event, 16)
	go pumpEvents(screen, events)

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}

	// Init may queue a resize ahead of the key.
	deadline := time.After(2 * time.Second)
	for keySeen := false; !keySeen; {
		select {
		case ev := <-events:
			_, keySeen = ev.(*tcell.EventKey)
		case <-deadline:
			t.Fatal("posted key event never arrived")
		}
	}

	screen.Fini()
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event pump kept running after Fini")
		}
	}
}
