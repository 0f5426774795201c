package gateway

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Signing strings are ";"-joined field sequences, HMAC-MD5 over the merchant
// secret, lowercase hex. Field order is fixed by the provider protocol and
// differs between the invoice request and the callback.

func sign(secret string, fields []string) string {
	mac := hmac.New(md5.New, []byte(secret))
	mac.Write([]byte(strings.Join(fields, ";")))
	return hex.EncodeToString(mac.Sum(nil))
}

// FormatAmount renders minor currency units as the 2-decimal string the
// provider expects in signing strings and request bodies.
func FormatAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// InvoiceSignature signs an invoice-creation request.
func InvoiceSignature(secret, merchantID, domainName, orderReference string, orderDate int64, amount, currency, productName, productPrice string) string {
	return sign(secret, []string{
		merchantID,
		domainName,
		orderReference,
		strconv.FormatInt(orderDate, 10),
		amount,
		currency,
		productName,
		"1",
		productPrice,
	})
}

// CallbackSignature recomputes the signature of a received callback.
// Absent optional fields contribute empty strings.
func CallbackSignature(secret string, cb *Callback) string {
	return sign(secret, []string{
		cb.MerchantAccount,
		cb.OrderReference,
		cb.Amount.String(),
		cb.Currency,
		cb.AuthCode,
		cb.CardPan,
		cb.TransactionStatus,
		cb.ReasonCode.String(),
	})
}

// VerifyCallback reports whether the callback's claimed signature matches the
// recomputed one. Comparison is constant-time.
func VerifyCallback(secret string, cb *Callback) bool {
	expected := CallbackSignature(secret, cb)
	return hmac.Equal([]byte(expected), []byte(cb.MerchantSignature))
}
