package service

import (
	"context"
)

// Pin event types published to the message queue.
const (
	PinEventCreated = "pin.created"
	PinEventMoved   = "pin.moved"
	PinEventDeleted = "pin.deleted"
	PinEventReaped  = "pins.reaped"
)

// PinEvent notifies downstream consumers (the notification service, feeds)
// about pin lifecycle transitions. Coordinates are included only for events
// the owner initiated; reap events carry a count instead.
type PinEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	EventType string  `json:"event_type"`
	PinID     string  `json:"pin_id,omitempty"`
	OwnerID   string  `json:"owner_id,omitempty"`
	PinType   string  `json:"pin_type,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Count     int64   `json:"count,omitempty"` // Rows affected, for reap events.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPinEvent publishes a pin lifecycle event for async processing
	PublishPinEvent(ctx context.Context, event *PinEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
