package handlers

import (
	"encoding/json"
	"net/http"

	reservationRepo "staybook/database/repository/reservation"
	"staybook/models"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// PaymentWebhookHandler correlates asynchronous gateway events back to
// their reservations via the authorization metadata and applies the
// confirmed/cancelled transitions. This is the only place a reservation
// leaves the authorized state.
type PaymentWebhookHandler struct {
	Reservations reservationRepo.ReservationRepository
	Logger       *zap.Logger
}

func NewPaymentWebhookHandler(reservations reservationRepo.ReservationRepository, logger *zap.Logger) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		Reservations: reservations,
		Logger:       logger,
	}
}

// HandleEvent processes a payment gateway event.
func (h *PaymentWebhookHandler) HandleEvent(c *gin.Context) {
	var event stripe.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
		return
	}

	var status string
	switch event.Type {
	case "payment_intent.succeeded":
		status = models.ReservationStatusConfirmed
	case "payment_intent.payment_failed", "payment_intent.canceled":
		status = models.ReservationStatusCancelled
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event object", err.Error())
		return
	}

	reservationID := intent.Metadata["reservation_id"]
	if reservationID == "" {
		// Standalone authorizations from the degraded checkout path
		// carry no correlation metadata; nothing to update.
		h.Logger.Warn("payment event without reservation metadata", zap.String("intent", intent.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.Reservations.UpdateStatus(c.Request.Context(), reservationID, status); err != nil {
		h.Logger.Error("failed to apply reservation transition",
			zap.String("reservationID", reservationID),
			zap.String("status", status),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update reservation", err.Error())
		return
	}

	h.Logger.Info("reservation transition applied",
		zap.String("reservationID", reservationID),
		zap.String("status", status))
	c.JSON(http.StatusOK, gin.H{"received": true})
}
