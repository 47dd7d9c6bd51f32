package webhook

import (
	"context"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
)

// Sink receives successful charges for downstream handling: receipt
// persistence, fulfillment kickoff, operator notification. The
// dispatcher's responsibility ends at producing the verified, typed
// event; a sink failure never blocks the acknowledgment.
type Sink interface {
	ChargeSucceeded(ctx context.Context, event *types.WebhookEvent, raw []byte) error
}

func (h *Handler) dispatch(ctx context.Context, event *types.WebhookEvent, raw []byte) {
	logger := middleware.GetLogger(ctx)

	switch event.Kind() {
	case types.KindChargeSuccess:
		logger.Info().
			Str("reference", event.Data.Reference).
			Int64("amount_naira", event.Data.AmountMajor()).
			Str("email", event.Data.Customer.Email).
			Str("package", event.Data.Metadata.PackageName).
			Str("paid_at", event.Data.PaidAt).
			Str("channel", event.Data.Channel).
			Msg("Payment successful")

		if h.sink != nil {
			if err := h.sink.ChargeSucceeded(ctx, event, raw); err != nil {
				// Acknowledge regardless: the sink is idempotent on
				// reference+event, and Paystack redelivers on its own
				// schedule.
				logger.Error().Err(err).Str("reference", event.Data.Reference).Msg("Charge sink failed")
			}
		}

	case types.KindChargeFailed:
		logger.Info().
			Str("reference", event.Data.Reference).
			Str("email", event.Data.Customer.Email).
			Msg("Payment failed")

	case types.KindTransferSuccess:
		logger.Info().Interface("data", event.Data).Msg("Transfer successful")

	case types.KindTransferFailed:
		logger.Info().Interface("data", event.Data).Msg("Transfer failed")

	default:
		logger.Info().Str("event", event.Event).Msg("Unhandled webhook event")
	}
}
