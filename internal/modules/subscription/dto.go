package subscription

import (
	"time"

	"streamfix/internal/domain"
)

type ChangeTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

// SubscriptionResponse exposes the ledger row plus the two gate predicates
// so clients can render renew/change buttons without re-deriving the rules.
type SubscriptionResponse struct {
	SubscriptionID string      `json:"subscription_id"`
	Tier           domain.Tier `json:"tier"`
	StartAt        time.Time   `json:"start_at"`
	EndAt          time.Time   `json:"end_at"`
	Active         bool        `json:"active"`
	AbleToRenew    bool        `json:"able_to_renew"`
	AbleToChange   bool        `json:"able_to_change"`
}

func toResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		Tier:           s.Tier,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Active:         s.Active,
		AbleToRenew:    s.AbleToRenew(),
		AbleToChange:   s.AbleToChange(),
	}
}
