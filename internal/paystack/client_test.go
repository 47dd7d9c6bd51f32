package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.PaystackConfig{SecretKey: "sk_test_secret", BaseURL: baseURL})
}

func initRequest() *types.InitializeTransactionRequest {
	return &types.InitializeTransactionRequest{
		Email:       "a@b.com",
		Amount:      20000000,
		Currency:    "NGN",
		CallbackURL: "https://keraunoslabs.com/success",
		Metadata: types.TransactionMetadata{
			PackageName: "Basic",
		},
	}
}

func TestInitializeTransactionSuccess(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody types.InitializeTransactionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://pay/x",
				"access_code": "AC1",
				"reference": "REF1"
			}
		}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).InitializeTransaction(context.Background(), initRequest())
	require.NoError(t, err)

	require.Equal(t, "Bearer sk_test_secret", gotAuth)
	require.Equal(t, "/transaction/initialize", gotPath)
	require.Equal(t, int64(20000000), gotBody.Amount)
	require.Equal(t, "NGN", gotBody.Currency)

	require.Equal(t, "https://pay/x", resp.Data.AuthorizationURL)
	require.Equal(t, "AC1", resp.Data.AccessCode)
	require.Equal(t, "REF1", resp.Data.Reference)
}

func TestInitializeTransactionRejectionCarriesGatewayMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Paystack reports logical failures with its own status flag,
		// often alongside a non-2xx HTTP status
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": false, "message": "Invalid amount passed"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).InitializeTransaction(context.Background(), initRequest())

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, "Invalid amount passed", rejection.Message)
}

func TestInitializeTransactionRejectionFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": false}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).InitializeTransaction(context.Background(), initRequest())

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, FallbackRejectionMessage, rejection.Message)
}

func TestInitializeTransactionMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).InitializeTransaction(context.Background(), initRequest())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestInitializeTransactionNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv.URL).InitializeTransaction(context.Background(), initRequest())
	require.ErrorIs(t, err, ErrUnreachable)
}
