package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// GatewayClient looks transactions up at the payment gateway. A client with
// an empty verify URL is disabled: enrollment then trusts the caller-supplied
// transaction id, which matches the historical behavior of this flow.
type GatewayClient struct {
	client    *resty.Client
	verifyURL string
}

type gatewayTxnResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewGatewayClient(verifyURL string) *GatewayClient {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &GatewayClient{client: client, verifyURL: verifyURL}
}

// Enabled reports whether transaction lookup is configured.
func (g *GatewayClient) Enabled() bool {
	return g != nil && g.verifyURL != ""
}

// VerifyTransaction asks the gateway whether the transaction settled.
// Returns false when the gateway answers with anything but a SUCCESS status.
func (g *GatewayClient) VerifyTransaction(transactionID string) (bool, error) {
	resp, err := g.client.R().
		SetQueryParam("transactionId", transactionID).
		SetResult(&gatewayTxnResponse{}).
		Get(g.verifyURL)
	if err != nil {
		return false, fmt.Errorf("gateway lookup failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return false, nil
	}

	result, ok := resp.Result().(*gatewayTxnResponse)
	if !ok {
		return false, fmt.Errorf("unexpected gateway response: %s", resp.String())
	}

	return result.Status == "SUCCESS", nil
}
