package subscription

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamfix/internal/domain"
	"streamfix/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts subscription endpoints on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/subscription", h.Get)
	rg.POST("/subscription/renew", h.Renew)
	rg.POST("/subscription/tier", h.ChangeTier)
	rg.POST("/subscription/deactivate", h.Deactivate)
}

func (h *Handler) Get(c *gin.Context) {
	sub, err := h.service.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, toResponse(sub))
}

func (h *Handler) Renew(c *gin.Context) {
	sub, err := h.service.Renew(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, toResponse(sub))
}

func (h *Handler) ChangeTier(c *gin.Context) {
	var req ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown subscription tier")
		return
	}

	sub, err := h.service.ChangeTier(c.Request.Context(), c.GetString("user_id"), tier)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, toResponse(sub))
}

func (h *Handler) Deactivate(c *gin.Context) {
	sub, err := h.service.Deactivate(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, toResponse(sub))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
		response.Error(c, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "No subscription for this account")
	case errors.Is(err, ErrRenewNotAllowed):
		response.Error(c, http.StatusConflict, "RENEW_NOT_ALLOWED", "Current window has not ended yet")
	case errors.Is(err, ErrChangeNotAllowed):
		response.Error(c, http.StatusConflict, "CHANGE_NOT_ALLOWED", "Tier can only change inside an active window")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Subscription operation failed")
	}
}
