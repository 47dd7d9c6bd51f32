package model

import (
	"encoding/json"
	"time"
)

type Model struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WebhookOutbox stages verified charge events for the relay. The
// partition key is the gateway reference so redeliveries collapse onto
// one row and Kafka ordering is per-reference.
type WebhookOutbox struct {
	ID           int64           `json:"id"`
	EventType    string          `json:"event_type"`
	Payload      json.RawMessage `json:"payload"`
	PartitionKey string          `json:"partition_key"`
	Status       string          `json:"status"`
	RetryCount   int             `json:"retry_count"`
	LastError    string          `json:"last_error,omitempty"`
	Model
}

// WebhookEventRecord is the durable copy of a processed gateway event,
// written by the fulfillment worker.
type WebhookEventRecord struct {
	ID        int64           `json:"id"`
	EventID   string          `json:"event_id"`
	Reference string          `json:"reference"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	Model
}
