package announce

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
)

const (
	connectTimeout = 5 * time.Second
	publishWait    = 500 * time.Millisecond
)

// MQTT publishes one JSON event per dispatched command to a fixed topic.
type MQTT struct {
	client mqtt.Client
	topic  string
	log    *zerolog.Logger
}

// NewMQTT connects to the broker and returns a publishing Announcer.
func NewMQTT(broker, clientID, topic string, logger *zerolog.Logger) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to mqtt broker %s: timeout", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", broker, err)
	}

	logger.Info().Str("broker", broker).Str("topic", topic).Msg("mqtt announcer connected")
	return &MQTT{client: client, topic: topic, log: logger}, nil
}

// Announce publishes the event. Failures are logged, never escalated; there
// is no acknowledgment channel back to the remote.
func (m *MQTT) Announce(ev Event) {
	payload, err := ev.Payload()
	if err != nil {
		m.log.Warn().Err(err).Msg("encode announce event")
		return
	}

	token := m.client.Publish(m.topic, 0, false, payload)
	if token.WaitTimeout(publishWait) && token.Error() != nil {
		m.log.Warn().Err(token.Error()).Str("topic", m.topic).Msg("publish announce event")
	}
}

// Close disconnects from the broker.
func (m *MQTT) Close() {
	m.client.Disconnect(uint(publishWait / time.Millisecond))
}
