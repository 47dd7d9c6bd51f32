package router

import (
	"encoding/json"
	"net/http"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/catalog"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/checkout"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/server"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/webhook"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Checkout *checkout.Handler
	Webhook  *webhook.Handler
	Catalog  *catalog.Handler
}

func NewRouter(s *server.Server, h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	mw := middleware.NewMiddlewares(s)

	// Apply middleware in order
	r.Use(middleware.RequestID)
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.Tracing.EnhanceTracing)
	r.Use(mw.ContextEnhancer.EnhanceContext)
	r.Use(mw.Global.RequestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/checkout", h.Checkout.InitiateCheckout)
		r.Post("/webhook/paystack", h.Webhook.HandleWebhook)
		r.Get("/packages", h.Catalog.ListPackages)
	})

	return r
}
