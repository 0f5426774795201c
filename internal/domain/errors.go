package domain

import "errors"

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrCourtNotFound   = errors.New("court not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrIntentNotFound  = errors.New("payment intent not found")
	ErrAccountNotFound = errors.New("payment account not found")
)

var (
	ErrSlotTaken            = errors.New("slot is not available")
	ErrBookingInPast        = errors.New("booking start must be in the future")
	ErrPaymentNotConfigured = errors.New("payments are not configured for this club")
	ErrForbidden            = errors.New("booking belongs to another user")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
