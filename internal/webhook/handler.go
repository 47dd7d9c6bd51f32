package webhook

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
)

// SignatureHeader carries Paystack's hex-encoded HMAC-SHA512 digest of
// the request body, keyed with the account secret.
const SignatureHeader = "x-paystack-signature"

type Handler struct {
	secret string
	sink   Sink
}

// NewHandler builds the webhook receiver. sink may be nil, in which
// case charge.success events are logged only.
func NewHandler(cfg *config.PaystackConfig, sink Sink) *Handler {
	return &Handler{
		secret: cfg.SecretKey,
		sink:   sink,
	}
}

// verifySignature validates the webhook came from Paystack. The digest
// is computed over the raw body bytes exactly as received on the wire;
// hashing a re-serialized form would break on key order and whitespace.
// hmac.Equal keeps the comparison constant-time.
func verifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	if _, err := mac.Write(payload); err != nil {
		return false
	}

	expectedSig := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expectedSig), []byte(signature))
}

func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	// A fault in parse or dispatch is the one case the gateway should
	// redeliver, so it degrades to 500 instead of the intentional 200.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("Webhook processing panicked")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Webhook processing failed"})
		}
	}()

	signature := r.Header.Get(SignatureHeader)
	if h.secret == "" || signature == "" {
		logger.Error().Msg("Missing secret key or signature")
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read webhook body")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Webhook processing failed"})
		return
	}

	if !verifySignature(body, signature, h.secret) {
		logger.Error().Msg("Invalid webhook signature")
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid signature"})
		return
	}

	var event types.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		// Authenticated but malformed. Acknowledge anyway: redelivery
		// cannot fix a payload-shape mismatch, and the error log is
		// the operator's signal that the gateway's shape changed.
		logger.Error().Err(err).Str("body", string(body)).Msg("Failed to parse webhook payload")
		writeJSON(w, http.StatusOK, map[string]any{"received": true})
		return
	}

	h.dispatch(ctx, &event, body)

	writeJSON(w, http.StatusOK, map[string]any{"received": true})
}

func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
