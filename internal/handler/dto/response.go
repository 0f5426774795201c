package dto

import (
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

type AvailableCourtResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	Price        string `json:"price"`
	PriceCents   int64  `json:"priceCents"`
	PricePerHour string `json:"pricePerHour"`
}

type AvailabilityResponse struct {
	AvailableCourts      []AvailableCourtResponse `json:"availableCourts"`
	AlternativeDurations []int                    `json:"alternativeDurations,omitempty"`
	AlternativeTimeSlots []string                 `json:"alternativeTimeSlots,omitempty"`
}

type CreatePaymentIntentResponse struct {
	CheckoutURL     string `json:"checkoutUrl"`
	BookingID       string `json:"bookingId"`
	PaymentIntentID string `json:"paymentIntentId"`
	OrderReference  string `json:"orderReference"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
}

type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PaymentResponse struct {
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	TransactionID string `json:"transactionId,omitempty"`
	CardPan       string `json:"cardPan,omitempty"`
	CardType      string `json:"cardType,omitempty"`
	Error         string `json:"error,omitempty"`
	CompletedAt   string `json:"completedAt,omitempty"`
}

type BookingStatusResponse struct {
	ID            string           `json:"id"`
	CourtID       string           `json:"courtId"`
	StartTime     string           `json:"startTime"`
	EndTime       string           `json:"endTime"`
	BookingStatus string           `json:"bookingStatus"`
	PaymentStatus string           `json:"paymentStatus"`
	Price         string           `json:"price"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
}

type PaymentStatusResponse struct {
	Configured bool   `json:"configured"`
	Status     string `json:"status,omitempty"`
	Scope      string `json:"scope,omitempty"`
	Provider   string `json:"provider,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func ToAvailabilityResponse(r *domain.AvailabilityResult) AvailabilityResponse {
	courts := make([]AvailableCourtResponse, 0, len(r.AvailableCourts))
	for _, c := range r.AvailableCourts {
		courts = append(courts, AvailableCourtResponse{
			ID:           c.ID,
			Name:         c.Name,
			Sport:        c.Sport,
			Price:        formatAmount(c.PriceCents),
			PriceCents:   c.PriceCents,
			PricePerHour: formatAmount(c.PricePerHourCents),
		})
	}

	return AvailabilityResponse{
		AvailableCourts:      courts,
		AlternativeDurations: r.AlternativeDurations,
		AlternativeTimeSlots: r.AlternativeTimeSlots,
	}
}

func ToCreatePaymentIntentResponse(r *domain.CreateIntentResult) CreatePaymentIntentResponse {
	return CreatePaymentIntentResponse{
		CheckoutURL:     r.CheckoutURL,
		BookingID:       r.BookingID,
		PaymentIntentID: r.PaymentIntentID,
		OrderReference:  r.OrderReference,
		Amount:          formatAmount(r.AmountCents),
		Currency:        r.Currency,
	}
}

func ToBookingStatusResponse(v *domain.BookingStatusView) BookingStatusResponse {
	resp := BookingStatusResponse{
		ID:            v.Booking.ID,
		CourtID:       v.Booking.CourtID,
		StartTime:     v.Booking.StartTime.Format(time.RFC3339),
		EndTime:       v.Booking.EndTime.Format(time.RFC3339),
		BookingStatus: string(v.Booking.BookingStatus),
		PaymentStatus: string(v.Booking.PaymentStatus),
		Price:         formatAmount(v.Booking.PriceCents),
	}

	if v.Intent != nil {
		p := &PaymentResponse{
			Status:        string(v.Intent.Status),
			Amount:        formatAmount(v.Intent.AmountCents),
			Currency:      v.Intent.Currency,
			TransactionID: v.Intent.TransactionID,
			CardPan:       v.Intent.CardPan,
			CardType:      v.Intent.CardType,
			Error:         v.Intent.ErrorMessage,
		}
		if v.Intent.CompletedAt != nil {
			p.CompletedAt = v.Intent.CompletedAt.Format(time.RFC3339)
		}
		resp.Payment = p
	}

	return resp
}

func ToPaymentStatusResponse(info *domain.AccountStatusInfo) PaymentStatusResponse {
	return PaymentStatusResponse{
		Configured: info.Configured,
		Status:     string(info.Status),
		Scope:      string(info.Scope),
		Provider:   info.Provider,
	}
}
