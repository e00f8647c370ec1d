// Package announce publishes dispatched-command telemetry for
// home-automation setups. Delivery is fire-and-forget.
package announce

import (
	"encoding/json"
	"time"
)

// Event describes one dispatched command.
type Event struct {
	Command string    `json:"command"`
	Session string    `json:"session"`
	At      time.Time `json:"at"`
}

// Announcer receives one Event per dispatched command.
type Announcer interface {
	Announce(ev Event)
	Close()
}

// Payload renders the event as its wire payload.
func (e Event) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// Nop is the default Announcer when telemetry is disabled.
type Nop struct{}

func (Nop) Announce(Event) {}
func (Nop) Close()         {}
