package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
)

const testSecret = "sk_test_webhook_secret"

type fakeSink struct {
	events []*types.WebhookEvent
	raws   [][]byte
	err    error
}

func (f *fakeSink) ChargeSucceeded(ctx context.Context, event *types.WebhookEvent, raw []byte) error {
	f.events = append(f.events, event)
	f.raws = append(f.raws, raw)
	return f.err
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestHandler(secret string, sink Sink) *Handler {
	return NewHandler(&config.PaystackConfig{SecretKey: secret}, sink)
}

func postWebhook(t *testing.T, h *Handler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/paystack", strings.NewReader(string(body)))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, req)
	return rec
}

func chargeSuccessBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": "charge.success",
		"data": map[string]any{
			"id":        302961,
			"reference": "REF1",
			"amount":    50000,
			"currency":  "NGN",
			"status":    "success",
			"customer": map[string]any{
				"email":         "a@b.com",
				"customer_code": "CUS_xyz",
			},
			"metadata": map[string]any{
				"package_name": "Basic",
			},
			"paid_at": "2025-07-01T10:00:00Z",
			"channel": "card",
		},
	})
	require.NoError(t, err)
	return body
}

func TestHandleWebhookChargeSuccess(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := chargeSuccessBody(t)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received": true}`, rec.Body.String())

	require.Len(t, sink.events, 1)
	require.Equal(t, "charge.success", sink.events[0].Event)
	require.Equal(t, "REF1", sink.events[0].Data.Reference)
	require.Equal(t, int64(50000), sink.events[0].Data.Amount)
	require.Equal(t, body, sink.raws[0])
}

func TestHandleWebhookMissingSignature(t *testing.T) {
	h := newTestHandler(testSecret, nil)
	body := chargeSuccessBody(t)

	rec := postWebhook(t, h, body, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhookSecretNotConfigured(t *testing.T) {
	h := newTestHandler("", nil)
	body := chargeSuccessBody(t)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhookTamperedBody(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := chargeSuccessBody(t)
	signature := sign(body, testSecret)

	tampered := make([]byte, len(body))
	copy(tampered, body)
	tampered[10] ^= 0x01

	rec := postWebhook(t, h, tampered, signature)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, sink.events)
}

func TestHandleWebhookTamperedSignature(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := chargeSuccessBody(t)
	signature := []byte(sign(body, testSecret))
	if signature[0] == 'a' {
		signature[0] = 'b'
	} else {
		signature[0] = 'a'
	}

	rec := postWebhook(t, h, body, string(signature))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, sink.events)
}

func TestHandleWebhookWrongSecret(t *testing.T) {
	h := newTestHandler(testSecret, nil)
	body := chargeSuccessBody(t)

	rec := postWebhook(t, h, body, sign(body, "some-other-secret"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Verification must operate on the exact wire bytes: the same JSON
// object serialized with different whitespace has a different digest,
// so a signature computed over the original bytes must not validate a
// re-serialized body.
func TestHandleWebhookVerifiesRawBytes(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)

	original := []byte(`{ "event":   "charge.success", "data": {"reference": "REF2", "amount": 1000, "customer": {"email": "a@b.com"}} }`)
	signature := sign(original, testSecret)

	// Equivalent JSON, different formatting
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(original, &decoded))
	reserialized, err := json.Marshal(decoded)
	require.NoError(t, err)
	require.NotEqual(t, original, reserialized)

	rec := postWebhook(t, h, original, signature)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postWebhook(t, h, reserialized, signature)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhookMalformedPayloadStillAcked(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := []byte(`{"event": "charge.success", "data":`)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Empty(t, sink.events)
}

func TestHandleWebhookUnrecognizedEventAcked(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := []byte(`{"event": "subscription.create", "data": {"reference": "REF3"}}`)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Empty(t, sink.events)
}

func TestHandleWebhookChargeFailedAcked(t *testing.T) {
	sink := &fakeSink{}
	h := newTestHandler(testSecret, sink)
	body := []byte(`{"event": "charge.failed", "data": {"reference": "REF4", "customer": {"email": "a@b.com"}}}`)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, sink.events, "failed charges must not reach the charge sink")
}

func TestHandleWebhookTransferEventsAcked(t *testing.T) {
	h := newTestHandler(testSecret, nil)

	for _, event := range []string{"transfer.success", "transfer.failed"} {
		body := []byte(`{"event": "` + event + `", "data": {"reference": "TRF1", "amount": 250000}}`)
		rec := postWebhook(t, h, body, sign(body, testSecret))
		require.Equal(t, http.StatusOK, rec.Code, event)
	}
}

func TestHandleWebhookSinkErrorStillAcked(t *testing.T) {
	sink := &fakeSink{err: errors.New("outbox unavailable")}
	h := newTestHandler(testSecret, sink)
	body := chargeSuccessBody(t)

	rec := postWebhook(t, h, body, sign(body, testSecret))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Len(t, sink.events, 1)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)

	require.True(t, verifySignature(body, sign(body, testSecret), testSecret))
	require.False(t, verifySignature(body, sign(body, "wrong"), testSecret))
	require.False(t, verifySignature(body, "", testSecret))
	require.False(t, verifySignature(body, "not-hex", testSecret))
}
