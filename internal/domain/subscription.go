package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tier is the subscription level governing the daily download quota.
type Tier string

const (
	TierFree   Tier = "FREE"
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// Tiers returns every known tier, cheapest first.
func Tiers() []Tier {
	return []Tier{TierFree, TierBronze, TierSilver, TierGold}
}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Tiers() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown subscription tier %q", s)
}

const subscriptionTerm = 30 * 24 * time.Hour

// Subscription tracks one account's tier and validity window.
// One row per user_id, created at registration and mutated in place.
type Subscription struct {
	SubscriptionID string    `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	UserID         string    `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	Tier           Tier      `gorm:"column:tier" json:"tier"`
	StartAt        time.Time `gorm:"column:start_at" json:"start_at"`
	EndAt          time.Time `gorm:"column:end_at" json:"end_at"`
	Active         bool      `gorm:"column:active" json:"active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "user_subscriptions" }

// NewSubscription seeds the FREE, active, 30-day subscription every account
// starts with.
func NewSubscription(userID string) *Subscription {
	now := time.Now()
	return &Subscription{
		SubscriptionID: uuid.NewString(),
		UserID:         userID,
		Tier:           TierFree,
		StartAt:        now,
		EndAt:          now.Add(subscriptionTerm),
		Active:         true,
	}
}

// Renew resets the validity window to now..now+30d and reactivates.
func (s *Subscription) Renew() {
	now := time.Now()
	s.StartAt = now
	s.EndAt = now.Add(subscriptionTerm)
	s.Active = true
}

// ChangeTier swaps the tier; the validity window is untouched.
func (s *Subscription) ChangeTier(tier Tier) {
	s.Tier = tier
}

// Deactivate turns the subscription off without touching the window.
func (s *Subscription) Deactivate() {
	s.Active = false
}

// AbleToRenew reports whether the current window has already ended.
func (s *Subscription) AbleToRenew() bool {
	return time.Now().After(s.EndAt)
}

// AbleToChange reports whether now is strictly inside the window and the
// subscription is active.
func (s *Subscription) AbleToChange() bool {
	now := time.Now()
	return now.After(s.StartAt) && now.Before(s.EndAt) && s.Active
}
