package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studypass-backend/internal/commands"
	"github.com/yungbote/studypass-backend/internal/http/response"
	"github.com/yungbote/studypass-backend/internal/services"
)

type SubscriptionHandler struct {
	svc services.SubscriptionService
}

func NewSubscriptionHandler(svc services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// POST /api/subscriptions/boleto
func (h *SubscriptionHandler) CreateBoletoSubscription(c *gin.Context) {
	var cmd commands.CreateBoletoSubscription
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.svc.CreateBoletoSubscription(c.Request.Context(), &cmd)
	h.respond(c, result, err)
}

// POST /api/subscriptions/paypal
func (h *SubscriptionHandler) CreatePayPalSubscription(c *gin.Context) {
	var cmd commands.CreatePayPalSubscription
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.svc.CreatePayPalSubscription(c.Request.Context(), &cmd)
	h.respond(c, result, err)
}

// POST /api/subscriptions/credit-card
func (h *SubscriptionHandler) CreateCreditCardSubscription(c *gin.Context) {
	var cmd commands.CreateCreditCardSubscription
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.svc.CreateCreditCardSubscription(c.Request.Context(), &cmd)
	h.respond(c, result, err)
}

func (h *SubscriptionHandler) respond(c *gin.Context, result commands.Result, err error) {
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if !result.Success {
		response.RespondRejected(c, result.Message, result.Notifications)
		return
	}
	response.RespondOK(c, result)
}
