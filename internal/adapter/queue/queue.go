package queue

import (
	"encoding/json"
	"fmt"
)

// MessageQueue carries parking events out of the process. Publishers fire
// and forget; delivery is at-most-once and the database row is always the
// source of truth.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// PublishJSON marshals v and publishes it under subject.
func PublishJSON(q MessageQueue, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", subject, err)
	}
	if err := q.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s event: %w", subject, err)
	}
	return nil
}
