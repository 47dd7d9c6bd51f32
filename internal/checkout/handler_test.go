package checkout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/paystack"
)

func postCheckout(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "https://keraunoslabs.com/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.InitiateCheckout(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestInitiateCheckoutSuccess(t *testing.T) {
	gateway := &fakeGateway{resp: successResponse()}
	h := NewHandler(newTestService("sk_test", gateway))

	rec := postCheckout(t, h, `{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "https://pay/x", body["authorization_url"])
	require.Equal(t, "AC1", body["access_code"])
	require.Equal(t, "REF1", body["reference"])
}

func TestInitiateCheckoutMissingFields(t *testing.T) {
	gateway := &fakeGateway{resp: successResponse()}
	h := NewHandler(newTestService("sk_test", gateway))

	rec := postCheckout(t, h, `{"email":"a@b.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Missing required fields: email, amount, packageName", body["error"])
	require.Zero(t, gateway.calls)
}

func TestInitiateCheckoutInvalidJSON(t *testing.T) {
	gateway := &fakeGateway{resp: successResponse()}
	h := NewHandler(newTestService("sk_test", gateway))

	rec := postCheckout(t, h, `{"email":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, gateway.calls)
}

func TestInitiateCheckoutMissingSecret(t *testing.T) {
	gateway := &fakeGateway{resp: successResponse()}
	h := NewHandler(newTestService("", gateway))

	rec := postCheckout(t, h, `{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Payment configuration error", body["error"])
	require.Zero(t, gateway.calls)
}

func TestInitiateCheckoutGatewayRejection(t *testing.T) {
	gateway := &fakeGateway{err: &paystack.RejectionError{Message: "Invalid amount passed"}}
	h := NewHandler(newTestService("sk_test", gateway))

	rec := postCheckout(t, h, `{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Invalid amount passed", body["error"])
}

func TestInitiateCheckoutGatewayUnreachable(t *testing.T) {
	gateway := &fakeGateway{err: paystack.ErrUnreachable}
	h := NewHandler(newTestService("sk_test", gateway))

	rec := postCheckout(t, h, `{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Internal server error", body["error"])
}

func TestRequestOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://keraunoslabs.com/api/v1/checkout", nil)
	require.Equal(t, "http://keraunoslabs.com", requestOrigin(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	require.Equal(t, "https://keraunoslabs.com", requestOrigin(req))
}
