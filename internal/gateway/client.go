package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Credentials are the decrypted merchant credentials of one payment account.
type Credentials struct {
	MerchantID string
	SecretKey  string
}

// InvoiceParams describes one checkout to create on the provider side.
type InvoiceParams struct {
	Credentials    Credentials
	DomainName     string
	OrderReference string
	OrderDate      time.Time
	AmountCents    int64
	Currency       string
	ProductName    string
	ClientPhone    string
	ReturnURL      string
	ServiceURL     string
}

type Client struct {
	apiURL     string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(apiURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type invoiceRequest struct {
	TransactionType    string   `json:"transactionType"`
	MerchantAccount    string   `json:"merchantAccount"`
	MerchantDomainName string   `json:"merchantDomainName"`
	MerchantSignature  string   `json:"merchantSignature"`
	APIVersion         int      `json:"apiVersion"`
	OrderReference     string   `json:"orderReference"`
	OrderDate          int64    `json:"orderDate"`
	Amount             string   `json:"amount"`
	Currency           string   `json:"currency"`
	ProductName        []string `json:"productName"`
	ProductCount       []int    `json:"productCount"`
	ProductPrice       []string `json:"productPrice"`
	ClientPhone        string   `json:"clientPhone,omitempty"`
	ReturnURL          string   `json:"returnUrl,omitempty"`
	ServiceURL         string   `json:"serviceUrl,omitempty"`
}

type invoiceResponse struct {
	InvoiceURL string      `json:"invoiceUrl"`
	PaymentURL string      `json:"paymentURL"`
	Reason     string      `json:"reason"`
	ReasonCode json.Number `json:"reasonCode"`
}

// CreateInvoice submits a signed invoice-creation request and returns the
// checkout URL the payer should be redirected to.
func (c *Client) CreateInvoice(ctx context.Context, p *InvoiceParams) (string, error) {
	amount := FormatAmount(p.AmountCents)
	orderDate := p.OrderDate.Unix()

	req := invoiceRequest{
		TransactionType:    "CREATE_INVOICE",
		MerchantAccount:    p.Credentials.MerchantID,
		MerchantDomainName: p.DomainName,
		APIVersion:         1,
		OrderReference:     p.OrderReference,
		OrderDate:          orderDate,
		Amount:             amount,
		Currency:           p.Currency,
		ProductName:        []string{p.ProductName},
		ProductCount:       []int{1},
		ProductPrice:       []string{amount},
		ClientPhone:        p.ClientPhone,
		ReturnURL:          p.ReturnURL,
		ServiceURL:         p.ServiceURL,
	}
	req.MerchantSignature = InvoiceSignature(
		p.Credentials.SecretKey,
		p.Credentials.MerchantID,
		p.DomainName,
		p.OrderReference,
		orderDate,
		amount,
		p.Currency,
		p.ProductName,
		amount,
	)

	var resp invoiceResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return "", err
	}

	url := resp.InvoiceURL
	if url == "" {
		url = resp.PaymentURL
	}
	if url == "" {
		return "", fmt.Errorf("gateway response has no checkout url (reason: %q)", resp.Reason)
	}

	return url, nil
}

const reasonCodeOK = "1100"

// VerifyCredentials probes the provider with a signed status request to check
// that the merchant credentials are accepted. The second return value is a
// transport error: when it is non-nil the verdict is unknown and the check
// should be retried later.
func (c *Client) VerifyCredentials(ctx context.Context, creds Credentials) (bool, error) {
	ref := "verify-" + uuid.NewString()
	req := map[string]any{
		"transactionType":   "CHECK_STATUS",
		"merchantAccount":   creds.MerchantID,
		"orderReference":    ref,
		"merchantSignature": sign(creds.SecretKey, []string{creds.MerchantID, ref}),
		"apiVersion":        1,
	}

	var resp invoiceResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return false, err
	}

	// The probe references an order that does not exist, so any response
	// other than an authentication failure proves the credentials work.
	switch resp.ReasonCode.String() {
	case reasonCodeOK, "1112", "5100": // ok / order not found
		return true, nil
	default:
		c.log.LogAttrs(ctx, logger.WarnLevel, "credentials rejected by gateway",
			logger.String("reason", resp.Reason),
			logger.String("reason_code", resp.ReasonCode.String()),
		)
		return false, nil
	}
}

func (c *Client) post(ctx context.Context, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}

	return nil
}
