package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	AvailableCourts(ctx context.Context, q *domain.AvailabilityQuery) (*domain.AvailabilityResult, error)
}

type PaymentSvc interface {
	CreateIntent(ctx context.Context, req *domain.CreateIntentInput) (*domain.CreateIntentResult, error)
	ProcessCallback(ctx context.Context, raw []byte) (string, error)
	BookingStatus(ctx context.Context, bookingID, userID string) (*domain.BookingStatusView, error)
}

type AccountSvc interface {
	Status(ctx context.Context, clubID string) (*domain.AccountStatusInfo, error)
}

type Handler struct {
	availabilityService AvailabilitySvc
	paymentService      PaymentSvc
	accountService      AccountSvc
}

func NewHandler(availabilityService AvailabilitySvc, paymentService PaymentSvc, accountService AccountSvc) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		paymentService:      paymentService,
		accountService:      accountService,
	}
}

// Availability

func (h *Handler) GetAvailableCourts(c *ginext.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid club id"})
		return
	}

	start := c.Query("start")
	if start == "" {
		start = c.Query("from")
	}

	q := &domain.AvailabilityQuery{
		ClubID: clubID,
		Date:   c.Query("date"),
		Start:  start,
		End:    c.Query("to"),
		Sport:  c.Query("courtType"),
	}
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "duration must be a number of minutes"})
			return
		}
		q.Duration = d
	}

	result, err := h.availabilityService.AvailableCourts(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(result))
}

// Payments

func (h *Handler) CreatePaymentIntent(c *ginext.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.paymentService.CreateIntent(c.Request.Context(), &domain.CreateIntentInput{
		UserID:   req.UserID,
		ClubID:   req.ClubID,
		CourtID:  req.CourtID,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Provider: req.Provider,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatePaymentIntentResponse(result))
}

// PaymentWebhook answers 200 even when the callback is rejected: the gateway
// retries non-200 responses, and a malformed or unknown callback will not get
// better on retry.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, dto.WebhookResponse{Success: false, Message: "unreadable body"})
		return
	}

	message, err := h.paymentService.ProcessCallback(c.Request.Context(), raw)
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusOK, dto.WebhookResponse{Success: false, Message: webhookMessage(err)})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true, Message: message})
}

func webhookMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "invalid callback"
	case errors.Is(err, domain.ErrIntentNotFound):
		return "unknown order reference"
	default:
		return "processing failed"
	}
}

func (h *Handler) GetBookingStatus(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	userID := c.Query("userId")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	view, err := h.paymentService.BookingStatus(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingStatusResponse(view))
}

func (h *Handler) GetPaymentStatus(c *ginext.Context) {
	clubID := c.Param("id")
	if _, err := uuid.Parse(clubID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid club id"})
		return
	}

	info, err := h.accountService.Status(c.Request.Context(), clubID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentStatusResponse(info))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrClubNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrIntentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrBookingInPast),
		errors.Is(err, domain.ErrPaymentNotConfigured):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
