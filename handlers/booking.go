package handlers

import (
	"net/http"
	"time"

	"staybook/models"
	"staybook/services/booking"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the quote and checkout operations over HTTP.
type BookingHandler struct {
	QuoteSvc    booking.QuoteService
	CheckoutSvc booking.CheckoutService
	Logger      *zap.Logger
}

func NewBookingHandler(quoteSvc booking.QuoteService, checkoutSvc booking.CheckoutService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		QuoteSvc:    quoteSvc,
		CheckoutSvc: checkoutSvc,
		Logger:      logger,
	}
}

type quoteInput struct {
	PropertySlug string `json:"propertySlug" binding:"required"`
	CheckIn      string `json:"checkIn" binding:"required"`
	CheckOut     string `json:"checkOut" binding:"required"`
	Guests       int    `json:"guests" binding:"required,min=1"`
}

func (in quoteInput) toRequest() (booking.QuoteRequest, error) {
	checkIn, err := time.Parse(dateLayout, in.CheckIn)
	if err != nil {
		return booking.QuoteRequest{}, err
	}
	checkOut, err := time.Parse(dateLayout, in.CheckOut)
	if err != nil {
		return booking.QuoteRequest{}, err
	}
	return booking.QuoteRequest{
		PropertySlug: in.PropertySlug,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       in.Guests,
	}, nil
}

// Quote computes a price breakdown for a prospective stay.
func (h *BookingHandler) Quote(c *gin.Context) {
	var input quoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req, err := input.toRequest()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	quote, err := h.QuoteSvc.Quote(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

type checkoutInput struct {
	quoteInput
	Customer models.Customer `json:"customer"`
}

// Checkout starts a paid reservation for the requested stay.
func (h *BookingHandler) Checkout(c *gin.Context) {
	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	quoteReq, err := input.toRequest()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	result, err := h.CheckoutSvc.StartCheckout(c.Request.Context(), booking.CheckoutRequest{
		QuoteRequest:   quoteReq,
		Customer:       input.Customer,
		Source:         "web",
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), "checkout failed", err.Error())
		return
	}

	if result.Degraded {
		h.Logger.Error("returning degraded checkout result",
			zap.String("slug", quoteReq.PropertySlug),
			zap.String("reservationID", result.ReservationID))
	}
	c.JSON(http.StatusOK, result)
}

// statusForError maps booking error codes onto HTTP statuses.
// Infrastructure failures never reach here; the services degrade
// instead of surfacing them.
func statusForError(err error) int {
	switch booking.ErrorCode(err) {
	case booking.CodeUnitNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidDateRange, booking.CodeMinimumStayViolation:
		return http.StatusBadRequest
	case booking.CodeUnavailable, booking.CodeNoLongerAvailable:
		return http.StatusConflict
	case booking.CodeInvalidPricing:
		return http.StatusUnprocessableEntity
	case booking.CodePaymentAuthorizationFailed:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
