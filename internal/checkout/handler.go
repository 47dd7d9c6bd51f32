package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/paystack"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) InitiateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logger := middleware.GetLogger(ctx)
	logger.Info().Msg("Received checkout request")

	var req types.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("Failed to decode checkout request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := h.service.Initiate(ctx, &req, requestOrigin(r))
	if err != nil {
		var rejection *paystack.RejectionError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, "Missing required fields: email, amount, packageName")
		case errors.As(err, &rejection):
			writeError(w, http.StatusBadRequest, rejection.Message)
		case errors.Is(err, ErrNotConfigured):
			writeError(w, http.StatusInternalServerError, "Payment configuration error")
		default:
			logger.Error().Err(err).Msg("Checkout failed")
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
	logger.Info().Str("reference", res.Reference).Msg("Checkout initiated successfully")
}

// requestOrigin reconstructs the scheme and host the client used, for
// deriving the default /success callback URL. Honors the proxy header
// since TLS usually terminates upstream.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
