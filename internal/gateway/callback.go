package gateway

import (
	"encoding/json"
	"fmt"
)

// StatusApproved is the provider's sentinel for a successful charge.
const StatusApproved = "Approved"

// Callback is the parsed envelope of the provider's asynchronous result.
// The provider sends several shapes; all fields except orderReference are
// optional and default to their zero values. Numeric fields use json.Number
// so the literal the provider signed survives re-serialization.
type Callback struct {
	MerchantAccount   string      `json:"merchantAccount"`
	OrderReference    string      `json:"orderReference"`
	MerchantSignature string      `json:"merchantSignature"`
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	AuthCode          string      `json:"authCode"`
	CardPan           string      `json:"cardPan"`
	CardType          string      `json:"cardType"`
	TransactionStatus string      `json:"transactionStatus"`
	TransactionID     string      `json:"transactionId"`
	ReasonCode        json.Number `json:"reasonCode"`
	Reason            string      `json:"reason"`
}

// ParseCallback decodes the raw webhook body. A payload without an
// orderReference cannot be attributed to an intent and is rejected.
func ParseCallback(raw []byte) (*Callback, error) {
	var cb Callback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("decode callback: %w", err)
	}
	if cb.OrderReference == "" {
		return nil, fmt.Errorf("callback has no orderReference")
	}
	return &cb, nil
}

// Approved reports whether the provider declared the charge successful.
// Signature validity is checked separately; both must hold for a payment
// to count.
func (c *Callback) Approved() bool {
	return c.TransactionStatus == StatusApproved
}
