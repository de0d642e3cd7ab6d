package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamfix/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/user/register", h.Register)
	rg.POST("/user/login", h.Login)
	rg.GET("/user/callback", h.KakaoCallback)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(c, http.StatusConflict, "USER_ALREADY_EXISTS", "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, toUserResponse(u))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, t, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}

	response.OK(c, gin.H{
		"user":  toUserResponse(u),
		"token": toTokenResponse(t),
	})
}

func (h *Handler) KakaoCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing authorization code")
		return
	}

	u, t, err := h.service.KakaoCallback(c.Request.Context(), code)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "OAUTH_ERROR", "Social login failed")
		return
	}

	response.OK(c, gin.H{
		"user":  toUserResponse(u),
		"token": toTokenResponse(t),
	})
}
