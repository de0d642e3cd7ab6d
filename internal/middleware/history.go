package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"streamfix/internal/domain"
)

const maxAuditPayload = 4 << 10

// HistoryWriter appends audit rows.
type HistoryWriter interface {
	Create(ctx context.Context, h *domain.UserHistory) error
}

// History records one audit row per authenticated request. The write happens
// after the handler and never fails the request.
func History(histories HistoryWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload []byte
		if c.Request.Body != nil {
			payload, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditPayload))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(payload), c.Request.Body))
		}

		c.Next()

		userID := c.GetString("user_id")
		if userID == "" {
			return
		}

		header, _ := json.Marshal(c.Request.Header)
		h := &domain.UserHistory{
			UserID:   userID,
			ClientIP: c.ClientIP(),
			Method:   c.Request.Method,
			URL:      c.Request.URL.String(),
			Header:   string(header),
			Payload:  string(payload),
		}
		if err := histories.Create(c.Request.Context(), h); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("audit row write failed")
		}
	}
}
