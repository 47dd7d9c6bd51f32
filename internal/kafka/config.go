package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Topics
const (
	TopicChargeSucceeded = "keraunos.webhook.charge"
	TopicDLQ             = "keraunos.dlq"
)

// Outbox event types
const (
	EventChargeSucceeded = "keraunos.charge.succeeded"
)

// Consumer groups
const (
	GroupFulfillmentWorker = "keraunos.fulfillment.worker"
)

type Config struct {
	Brokers           []string
	ProducerTimeout   time.Duration
	RequiredAcks      kgo.Acks
	SessionTimeout    time.Duration
	HeartbeatInterval time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
}

func DefaultConfig(brokers []string) *Config {
	return &Config{
		Brokers:           brokers,
		ProducerTimeout:   10 * time.Second,
		RequiredAcks:      kgo.AllISRAcks(),
		SessionTimeout:    10 * time.Second,
		HeartbeatInterval: 3 * time.Second,
		MaxRetries:        5,
		RetryBackoff:      1 * time.Second,
	}
}
