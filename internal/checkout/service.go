package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/internal/middleware"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
	"github.com/go-playground/validator/v10"
)

// DefaultCurrency is the service's operating currency. Amounts are in
// kobo end to end; the client converts for display, never this service.
const DefaultCurrency = "NGN"

var (
	ErrInvalidRequest = errors.New("invalid checkout request")
	// ErrNotConfigured means the operator never set the Paystack
	// secret. Kept distinct from client errors so it maps to 500.
	ErrNotConfigured = errors.New("paystack secret key not configured")
)

var validate = validator.New()

// Gateway is the subset of the Paystack client the service uses.
type Gateway interface {
	InitializeTransaction(ctx context.Context, req *types.InitializeTransactionRequest) (*types.InitializeTransactionResponse, error)
}

type Service struct {
	cfg     *config.PaystackConfig
	gateway Gateway
}

func NewService(cfg *config.PaystackConfig, gateway Gateway) *Service {
	return &Service{
		cfg:     cfg,
		gateway: gateway,
	}
}

// Initiate validates the request, then creates a hosted checkout
// session with the gateway. Validation and configuration failures
// return before any outbound call is made. origin is the scheme+host
// of the incoming request, used to derive the default callback URL.
func (s *Service) Initiate(ctx context.Context, req *types.CheckoutRequest, origin string) (*types.CheckoutResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := validate.Struct(req); err != nil {
		logger.Error().Err(err).Msg("Validation error on checkout request")
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if s.cfg.SecretKey == "" {
		logger.Error().Msg("Paystack secret key is not configured")
		return nil, ErrNotConfigured
	}

	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = origin + "/success"
	}

	gatewayReq := &types.InitializeTransactionRequest{
		Email:       req.Email,
		Amount:      req.Amount,
		Currency:    DefaultCurrency,
		CallbackURL: callbackURL,
		Metadata: types.TransactionMetadata{
			PackageName: req.PackageName,
			CustomFields: []types.CustomField{
				{
					DisplayName:  "Package",
					VariableName: "package",
					Value:        req.PackageName,
				},
			},
		},
	}

	resp, err := s.gateway.InitializeTransaction(ctx, gatewayReq)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize transaction with Paystack")
		return nil, err
	}

	logger.Info().
		Str("reference", resp.Data.Reference).
		Str("package", req.PackageName).
		Msg("Checkout session created")

	return &types.CheckoutResponse{
		Success:          true,
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        resp.Data.Reference,
	}, nil
}
