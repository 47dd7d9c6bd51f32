// Mock Paystack for local development. By default it serves the
// transaction initialize endpoint on :8081. With -send it instead
// fires a signed charge.success webhook at the target, using the same
// HMAC-SHA512 scheme as the real gateway.
package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type InitializeTransactionResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func main() {
	var (
		send      = flag.Bool("send", false, "send a signed charge.success webhook instead of serving")
		target    = flag.String("target", "http://localhost:8080/api/v1/webhook/paystack", "webhook endpoint to post to")
		secret    = flag.String("secret", "sk_test_mock", "secret key used to sign the webhook")
		reference = flag.String("reference", "", "transaction reference (generated if empty)")
		amount    = flag.Int64("amount", 20000000, "amount in kobo")
		email     = flag.String("email", "client@example.com", "customer email")
		pkg       = flag.String("package", "Basic", "package name")
	)
	flag.Parse()

	if *send {
		if err := sendWebhook(*target, *secret, *reference, *amount, *email, *pkg); err != nil {
			log.Fatal(err)
		}
		return
	}

	serve()
}

func serve() {
	port := ":8081"
	http.HandleFunc("/transaction/initialize", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		resp := InitializeTransactionResponse{
			Status:  true,
			Message: "Authorization URL created",
		}
		resp.Data.AuthorizationURL = "https://checkout.paystack.com/mock_auth_url"
		resp.Data.AccessCode = "mock_access_code"
		resp.Data.Reference = fmt.Sprintf("mock_ref_%d", time.Now().UnixNano())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)

		log.Printf("Processed mock payment initialization: %s", resp.Data.Reference)
	})

	log.Printf("Mock Paystack server starting on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatal(err)
	}
}

func sendWebhook(target, secret, reference string, amount int64, email, pkg string) error {
	if reference == "" {
		reference = fmt.Sprintf("mock_ref_%d", time.Now().UnixNano())
	}

	payload := map[string]any{
		"event": "charge.success",
		"data": map[string]any{
			"id":        time.Now().UnixNano(),
			"reference": reference,
			"amount":    amount,
			"currency":  "NGN",
			"status":    "success",
			"customer": map[string]any{
				"email":         email,
				"customer_code": "CUS_mock",
			},
			"metadata": map[string]any{
				"package_name": pkg,
			},
			"paid_at": time.Now().UTC().Format(time.RFC3339),
			"channel": "card",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-paystack-signature", signature)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	log.Printf("webhook %s -> %d %s", reference, resp.StatusCode, bytes.TrimSpace(respBody))
	return nil
}
