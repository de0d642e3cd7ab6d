package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription_SeedsFreeActive30Days(t *testing.T) {
	sub := NewSubscription("user-1")

	assert.Equal(t, TierFree, sub.Tier)
	assert.True(t, sub.Active)
	assert.NotEmpty(t, sub.SubscriptionID)
	assert.WithinDuration(t, sub.StartAt.Add(30*24*time.Hour), sub.EndAt, time.Second)

	// Fresh window: change allowed, renew not.
	assert.True(t, sub.AbleToChange())
	assert.False(t, sub.AbleToRenew())
}

func TestSubscription_GatesAfterWindowEnds(t *testing.T) {
	now := time.Now()
	sub := &Subscription{
		UserID:  "user-1",
		Tier:    TierSilver,
		StartAt: now.Add(-31 * 24 * time.Hour),
		EndAt:   now.Add(-time.Hour),
		Active:  true,
	}

	assert.True(t, sub.AbleToRenew())
	assert.False(t, sub.AbleToChange())

	sub.Renew()

	assert.False(t, sub.AbleToRenew())
	assert.True(t, sub.AbleToChange())
	assert.WithinDuration(t, time.Now(), sub.StartAt, time.Second)
	// Renew keeps the tier.
	assert.Equal(t, TierSilver, sub.Tier)
}

func TestSubscription_DeactivateBlocksChangeOnly(t *testing.T) {
	sub := NewSubscription("user-1")
	sub.Deactivate()

	assert.False(t, sub.Active)
	assert.False(t, sub.AbleToChange())
	// Renew is gated on the window, not the flag.
	assert.False(t, sub.AbleToRenew())

	sub.EndAt = time.Now().Add(-time.Minute)
	assert.True(t, sub.AbleToRenew())
}

func TestSubscription_ChangeTierKeepsWindow(t *testing.T) {
	sub := NewSubscription("user-1")
	start, end := sub.StartAt, sub.EndAt

	sub.ChangeTier(TierGold)

	assert.Equal(t, TierGold, sub.Tier)
	assert.Equal(t, start, sub.StartAt)
	assert.Equal(t, end, sub.EndAt)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier(" gold ")
	require.NoError(t, err)
	assert.Equal(t, TierGold, tier)

	_, err = ParseTier("PLATINUM")
	assert.Error(t, err)
}
