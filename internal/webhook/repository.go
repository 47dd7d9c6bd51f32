package webhook

import (
	"context"
	"fmt"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/kafka"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxSink stages verified charge events in webhook_outbox for the
// relay to publish. The unique index on (partition_key, event_type)
// makes redelivered webhooks a no-op, satisfying idempotency on
// reference + event type.
type OutboxSink struct {
	db *pgxpool.Pool
}

func NewOutboxSink(db *pgxpool.Pool) *OutboxSink {
	return &OutboxSink{db: db}
}

func (s *OutboxSink) ChargeSucceeded(ctx context.Context, event *types.WebhookEvent, raw []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO webhook_outbox (event_type, payload, partition_key, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (partition_key, event_type) DO NOTHING
	`, kafka.EventChargeSucceeded, raw, event.Data.Reference)
	if err != nil {
		return fmt.Errorf("failed to stage webhook in outbox: %w", err)
	}
	return nil
}
