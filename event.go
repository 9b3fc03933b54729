package playlytics

import "time"

// Event is a single tracked occurrence. Events are created by Track and are
// immutable afterwards; the wire shape is a JSON object with an ISO-8601
// timestamp, a type tag, and free-form properties.
type Event struct {
	Timestamp  string         `json:"timestamp"`
	EventType  string         `json:"event_type"`
	Properties map[string]any `json:"properties"`
}

// newEvent stamps an event with the current UTC time. The properties map is
// copied so later mutation by the caller cannot change a queued event.
func newEvent(eventType string, properties map[string]any) Event {
	props := make(map[string]any, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	return Event{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		EventType:  eventType,
		Properties: props,
	}
}
