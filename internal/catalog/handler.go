package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"packages": Packages()}); err != nil {
		logger.Error().Err(err).Msg("Failed to encode package catalog")
	}
}
