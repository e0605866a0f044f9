package model

// Tier is the subscription level of an account.
type Tier string

const (
	TierFree       Tier = "free"
	TierGood       Tier = "good"
	TierEvenBetter Tier = "even_better"
	TierLotsMore   Tier = "lots_more"
)

// tierRank orders tiers for threshold comparisons.
var tierRank = map[Tier]int{
	TierFree:       0,
	TierGood:       1,
	TierEvenBetter: 2,
	TierLotsMore:   3,
}

// Rank returns the ordinal position of the tier (free < good < even_better <
// lots_more). Unknown tiers rank below free.
func (t Tier) Rank() int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return -1
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// AtLeast reports whether t ranks at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// ParseTier maps a raw string to a Tier, falling back to free for anything
// unrecognized so a corrupt backend value never grants elevated access.
func ParseTier(raw string) Tier {
	t := Tier(raw)
	if t.Valid() {
		return t
	}
	return TierFree
}

// Environment names used across config and server wiring.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
