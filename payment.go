package cryptonews

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// PaymentRequirement describes one payment method accepted by the server,
// per the x402 scheme: pay the given amount of the asset (smallest unit,
// e.g. 6 decimals for USDC) to the payTo address on the named network.
type PaymentRequirement struct {
	Scheme            string `json:"scheme"`
	Network           string `json:"network"`
	PayTo             string `json:"payTo"`
	Asset             string `json:"asset"`
	Amount            string `json:"amount"`
	Description       string `json:"description,omitempty"`
	MaxTimeoutSeconds int64  `json:"maxTimeoutSeconds,omitempty"`
}

// PaymentRequirements is the structure carried base64-encoded in the
// X-PAYMENT-REQUIRED header of a 402 response.
type PaymentRequirements struct {
	X402Version int                  `json:"x402Version"`
	Error       string               `json:"error,omitempty"`
	Accepts     []PaymentRequirement `json:"accepts"`
}

// DecodePaymentRequirements decodes the raw X-PAYMENT-REQUIRED header value
// carried by a PaymentRequiredError. The SDK never acts on the result;
// producing a payment token from it is the job of external x402 signing
// tooling, and the resulting token is passed back verbatim via the payment
// parameter of the premium operations.
func DecodePaymentRequirements(raw string) (*PaymentRequirements, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty payment requirements header")
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode payment requirements: %w", err)
	}

	var reqs PaymentRequirements
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse payment requirements: %w", err)
	}

	return &reqs, nil
}
