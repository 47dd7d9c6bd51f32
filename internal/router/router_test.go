package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/catalog"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/checkout"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/paystack"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/server"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/webhook"
)

// newTestRouter assembles the full stack (middleware chain included)
// against a Paystack config pointing at the given base URL.
func newTestRouter(t *testing.T, paystackCfg config.PaystackConfig) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Primary:       config.PrimaryConfig{Env: "test"},
		Server:        config.ServerConfig{Port: "0"},
		Observability: &config.ObservabilityConfig{ServiceName: "keraunos-payments", Environment: "test"},
		Paystack:      paystackCfg,
	}

	log := zerolog.Nop()
	srv := server.NewServer(cfg, &log, nil)

	client := paystack.NewClient(&cfg.Paystack)
	handlers := &Handlers{
		Checkout: checkout.NewHandler(checkout.NewService(&cfg.Paystack, client)),
		Webhook:  webhook.NewHandler(&cfg.Paystack, nil),
		Catalog:  catalog.NewHandler(),
	}

	return NewRouter(srv, handlers)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, config.PaystackConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCheckoutWithoutSecretReturnsConfigurationError(t *testing.T) {
	r := newTestRouter(t, config.PaystackConfig{BaseURL: "https://api.paystack.co"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Payment configuration error", body["error"])
}

func TestCheckoutEndToEndPassthrough(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		w.Write([]byte(`{
			"status": true,
			"data": {"authorization_url": "https://pay/x", "access_code": "AC1", "reference": "REF1"}
		}`))
	}))
	defer gateway.Close()

	r := newTestRouter(t, config.PaystackConfig{SecretKey: "sk_test", BaseURL: gateway.URL})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"email":"a@b.com","amount":20000000,"packageName":"Basic"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, "https://pay/x", body["authorization_url"])
	require.Equal(t, "AC1", body["access_code"])
	require.Equal(t, "REF1", body["reference"])
}

func TestWebhookRouteRejectsUnsignedRequests(t *testing.T) {
	r := newTestRouter(t, config.PaystackConfig{SecretKey: "sk_test"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/paystack",
		strings.NewReader(`{"event":"charge.success"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
