// Package eventbus publishes one JSON event per processed assignment
// over a ZeroMQ PUB socket: a single fire-and-forget publisher with a
// topic-less broadcast for any subscriber that wants a live feed of
// sheet activity.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-zeromq/zmq4"
)

// Event is one published assignment outcome.
type Event struct {
	Cell      string `json:"cell"`
	Formula   string `json:"formula"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Bus owns a single PUB socket bound at construction time.
type Bus struct {
	sock   zmq4.Socket
	logger *log.Logger
}

// Listen creates and binds a PUB socket at addr (e.g. "tcp://127.0.0.1:5600").
func Listen(ctx context.Context, addr string, logger *log.Logger) (*Bus, error) {
	if logger == nil {
		logger = log.Default()
	}
	sock := zmq4.NewPub(ctx)
	if err := sock.Listen(addr); err != nil {
		return nil, fmt.Errorf("eventbus: failed to bind %s: %w", addr, err)
	}
	logger.Printf("eventbus: publishing on %s", addr)
	return &Bus{sock: sock, logger: logger}, nil
}

// Publish sends one Event. Marshalling or send failures are logged,
// never returned — a missing subscriber must not affect the sheet.
func (b *Bus) Publish(cell, formulaText, status string) {
	if b == nil {
		return
	}
	evt := Event{
		Cell:      cell,
		Formula:   formulaText,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		b.logger.Printf("eventbus: marshal failed: %v", err)
		return
	}
	if err := b.sock.Send(zmq4.NewMsg(payload)); err != nil {
		b.logger.Printf("eventbus: publish failed: %v", err)
	}
}

// Close shuts down the underlying socket.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}
	return b.sock.Close()
}
