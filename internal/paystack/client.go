package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Zeuz09-bot/Keraunos-labs/internal/config"
	"github.com/Zeuz09-bot/Keraunos-labs/pkg/types"
	"github.com/rs/zerolog/log"
)

// FallbackRejectionMessage is returned to the client when the gateway
// declines a transaction without supplying a message of its own.
const FallbackRejectionMessage = "Failed to initialize payment"

// ErrUnreachable wraps transport failures and malformed gateway
// responses. It is deliberately distinct from RejectionError: a
// rejection is the gateway answering "no", unreachable is no usable
// answer at all.
var ErrUnreachable = fmt.Errorf("paystack unreachable")

// RejectionError carries the gateway's own failure message when the
// response body reports status=false, regardless of HTTP status code.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return "paystack rejected transaction: " + e.Message
}

type Client struct {
	httpClient *http.Client
	secretKey  string
	baseURL    string
}

func NewClient(cfg *config.PaystackConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 50,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
	}
}

// InitializeTransaction creates a hosted checkout session. The
// gateway's status flag is authoritative, not the HTTP status: a 4xx
// with a parseable body surfaces as RejectionError, while network
// errors and unparseable bodies surface as ErrUnreachable.
func (c *Client) InitializeTransaction(ctx context.Context, req *types.InitializeTransactionRequest) (*types.InitializeTransactionResponse, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, "/transaction/initialize", req)
	if err != nil {
		return nil, err
	}

	var resp types.InitializeTransactionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrUnreachable, err)
	}

	if !resp.Status {
		message := resp.Message
		if message == "" {
			message = FallbackRejectionMessage
		}
		return nil, &RejectionError{Message: message}
	}

	return &resp, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal request body")
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create HTTP request")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		log.Error().Err(err).
			Str("method", method).
			Str("url", url).
			Int64("duration_ms", duration).
			Msg("HTTP request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).
			Str("method", method).
			Str("url", url).
			Int64("duration_ms", duration).
			Msg("Failed to read response body")
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnreachable, err)
	}

	log.Info().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("url", url).
		Int64("duration_ms", duration).
		Msg("Paystack API request completed")

	return respBody, nil
}
