package movie

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"streamfix/internal/domain"
	"streamfix/internal/pkg/response"
)

// SubscriptionSource resolves the caller's subscription so the download
// endpoint knows which tier to enforce.
type SubscriptionSource interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
}

// DownloadRoutePattern is the download route as gin reports it in FullPath,
// shared with the metrics middleware so rejection counting follows the
// route if it moves.
const DownloadRoutePattern = "/movie/:id/download"

type Handler struct {
	service *Service
	subs    SubscriptionSource
}

func NewHandler(service *Service, subs SubscriptionSource) *Handler {
	return &Handler{service: service, subs: subs}
}

// RegisterRoutes mounts catalog endpoints. rg must already carry the auth
// middleware for download/like.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/movie/client/:page", h.FetchFromClient)
	public.GET("/movie/search", h.Search)
	protected.POST(DownloadRoutePattern, h.Download)
	protected.POST("/movie/:id/like", h.Like)
}

func (h *Handler) FetchFromClient(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "page must be a positive integer")
		return
	}

	cp, err := h.service.FetchFromClient(c.Request.Context(), page)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch movies from upstream")
		return
	}
	response.OK(c, cp)
}

func (h *Handler) Search(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "page must be a positive integer")
		return
	}

	res, err := h.service.FetchFromDB(c.Request.Context(), page)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search movies")
		return
	}
	response.OK(c, res)
}

func (h *Handler) Download(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("id")

	tier, err := h.callerTier(c, userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve subscription")
		return
	}

	title, err := h.service.Download(c.Request.Context(), userID, tier, movieID)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuotaExceeded):
			response.Error(c, http.StatusForbidden, "QUOTA_EXCEEDED", "Daily download quota exceeded for your tier")
		case errors.Is(err, ErrMovieNotFound):
			response.Error(c, http.StatusNotFound, "MOVIE_NOT_FOUND", "Movie not found")
		case errors.Is(err, ErrPolicyNotFound):
			response.Error(c, http.StatusForbidden, "POLICY_NOT_FOUND", "No download policy for your tier")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to download movie")
		}
		return
	}

	response.OK(c, DownloadResponse{MovieID: movieID, MovieName: title})
}

func (h *Handler) Like(c *gin.Context) {
	userID := c.GetString("user_id")
	movieID := c.Param("id")

	l, err := h.service.Like(c.Request.Context(), userID, movieID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			response.Error(c, http.StatusNotFound, "MOVIE_NOT_FOUND", "Movie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to like movie")
		return
	}

	response.OK(c, LikeResponse{MovieID: l.MovieID, Liked: l.Liked})
}

// callerTier falls back to FREE when the account has no active subscription
// row, which only happens for accounts predating the seed-on-register flow.
func (h *Handler) callerTier(c *gin.Context, userID string) (domain.Tier, error) {
	sub, err := h.subs.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		return domain.TierFree, err
	}
	if sub == nil || !sub.Active {
		return domain.TierFree, nil
	}
	return sub.Tier, nil
}
