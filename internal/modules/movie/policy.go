package movie

import "streamfix/internal/domain"

// DownloadPolicy decides whether one more download is allowed given how many
// the account already made inside the current day window.
type DownloadPolicy interface {
	OwnsTier(tier domain.Tier) bool
	WithinQuota(countToday int64) bool
}

type quotaPolicy struct {
	tier  domain.Tier
	limit int64
}

func (p quotaPolicy) OwnsTier(tier domain.Tier) bool    { return tier == p.tier }
func (p quotaPolicy) WithinQuota(countToday int64) bool { return countToday < p.limit }

type unlimitedPolicy struct {
	tier domain.Tier
}

func (p unlimitedPolicy) OwnsTier(tier domain.Tier) bool    { return tier == p.tier }
func (p unlimitedPolicy) WithinQuota(countToday int64) bool { return true }

// FREE holds no download entitlement, so its policy admits nothing.
func NewFreePolicy() DownloadPolicy   { return quotaPolicy{tier: domain.TierFree, limit: 0} }
func NewBronzePolicy() DownloadPolicy { return quotaPolicy{tier: domain.TierBronze, limit: 5} }
func NewSilverPolicy() DownloadPolicy { return quotaPolicy{tier: domain.TierSilver, limit: 10} }
func NewGoldPolicy() DownloadPolicy   { return unlimitedPolicy{tier: domain.TierGold} }

// PolicyRegistry resolves the one policy owning a tier. There is no default
// policy: an unclaimed tier is a configuration hole and surfaces as
// ErrPolicyNotFound at resolve time.
type PolicyRegistry struct {
	policies []DownloadPolicy
}

// NewPolicyRegistry rejects a set where two policies claim the same tier.
func NewPolicyRegistry(policies ...DownloadPolicy) (*PolicyRegistry, error) {
	for _, tier := range domain.Tiers() {
		owners := 0
		for _, p := range policies {
			if p.OwnsTier(tier) {
				owners++
			}
		}
		if owners > 1 {
			return nil, ErrDuplicatePolicy
		}
	}
	return &PolicyRegistry{policies: policies}, nil
}

func DefaultPolicyRegistry() (*PolicyRegistry, error) {
	return NewPolicyRegistry(NewFreePolicy(), NewBronzePolicy(), NewSilverPolicy(), NewGoldPolicy())
}

func (r *PolicyRegistry) Resolve(tier domain.Tier) (DownloadPolicy, error) {
	for _, p := range r.policies {
		if p.OwnsTier(tier) {
			return p, nil
		}
	}
	return nil, ErrPolicyNotFound
}
