// Package messaging publishes domain events to NATS so downstream
// consumers (feeds, analytics) can react to travel activity. Publishing is
// best effort: the backend never fails a request because an event could
// not be sent.
package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Event subjects.
const (
	SubjectUserRegistered = "roam.user.registered"
	SubjectHistoryAdded   = "roam.history.added"
	SubjectWishlistAdded  = "roam.wishlist.added"
)

// Event is the envelope for every published message.
type Event struct {
	ID      string      `json:"id"`
	Subject string      `json:"subject"`
	At      time.Time   `json:"at"`
	Data    interface{} `json:"data"`
}

// Publisher wraps a NATS connection. A nil Publisher or one built without a
// URL is valid and drops every event.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

// Connect dials NATS. An empty URL yields a disabled publisher; a failed
// dial is reported but also degrades to disabled, matching how the cache
// behaves without Redis.
func Connect(url string, logger *slog.Logger) *Publisher {
	if url == "" {
		return &Publisher{logger: logger}
	}

	nc, err := nats.Connect(url)
	if err != nil {
		logger.Warn("nats unavailable, events disabled", "url", url, "error", err)
		return &Publisher{logger: logger}
	}

	logger.Info("connected to nats", "url", url)
	return &Publisher{nc: nc, logger: logger}
}

// Publish sends one event. Errors are returned for callers that want to
// log them; no caller treats them as fatal.
func (p *Publisher) Publish(subject string, data interface{}) error {
	if p == nil || p.nc == nil || !p.nc.IsConnected() {
		return nil
	}

	payload, err := json.Marshal(Event{
		ID:      uuid.NewString(),
		Subject: subject,
		At:      time.Now().UTC(),
		Data:    data,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p != nil && p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
