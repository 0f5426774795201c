package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testParams() *InvoiceParams {
	return &InvoiceParams{
		Credentials:    Credentials{MerchantID: "merchant", SecretKey: "secret"},
		DomainName:     "club.example.com",
		OrderReference: "b1-1700000000",
		OrderDate:      time.Unix(1700000000, 0),
		AmountCents:    15000,
		Currency:       "UAH",
		ProductName:    "Court booking",
		ReturnURL:      "https://club.example.com/bookings/b1",
		ServiceURL:     "https://club.example.com/webhooks/payment-gateway",
	}
}

func TestClient_CreateInvoice_InvoiceURL(t *testing.T) {
	var got invoiceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"invoiceUrl": "https://pay.example.com/i/abc"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger(t))
	url, err := c.CreateInvoice(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/i/abc", url)

	assert.Equal(t, "CREATE_INVOICE", got.TransactionType)
	assert.Equal(t, "merchant", got.MerchantAccount)
	assert.Equal(t, "150.00", got.Amount)
	assert.Equal(t, []string{"Court booking"}, got.ProductName)
	assert.Equal(t, []int{1}, got.ProductCount)

	wantSig := InvoiceSignature("secret", "merchant", "club.example.com", "b1-1700000000", 1700000000, "150.00", "UAH", "Court booking", "150.00")
	assert.Equal(t, wantSig, got.MerchantSignature)
}

func TestClient_CreateInvoice_PaymentURLFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"paymentURL": "https://pay.example.com/p/xyz"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger(t))
	url, err := c.CreateInvoice(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/p/xyz", url)
}

func TestClient_CreateInvoice_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"reason": "Invalid signature", "reasonCode": 1101})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger(t))
	_, err := c.CreateInvoice(context.Background(), testParams())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no checkout url")
}

func TestClient_CreateInvoice_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger(t))
	_, err := c.CreateInvoice(context.Background(), testParams())

	assert.Error(t, err)
}

func TestClient_CreateInvoice_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, newTestLogger(t))
	_, err := c.CreateInvoice(context.Background(), testParams())

	assert.Error(t, err)
}

func TestClient_VerifyCredentials(t *testing.T) {
	tests := []struct {
		name       string
		reasonCode int
		want       bool
	}{
		{name: "ok code means valid", reasonCode: 1100, want: true},
		{name: "order not found still proves auth", reasonCode: 5100, want: true},
		{name: "auth failure means invalid", reasonCode: 1101, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"reasonCode": tt.reasonCode})
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, newTestLogger(t))
			valid, err := c.VerifyCredentials(context.Background(), Credentials{MerchantID: "m", SecretKey: "s"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestClient_VerifyCredentials_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, newTestLogger(t))
	_, err := c.VerifyCredentials(context.Background(), Credentials{MerchantID: "m", SecretKey: "s"})

	assert.Error(t, err)
}
