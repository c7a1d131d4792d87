package quiz

import "fmt"

// RewardPolicy maps a quiz outcome to a token amount. Implementations must be
// pure and total over (correct, total), monotonic non-decreasing in correct
// for fixed total, and return zero when correct is zero.
type RewardPolicy interface {
	Tokens(correct, total int) int64
}

// Policy names accepted by NewPolicy and the configuration layer.
const (
	PolicyThreshold    = "threshold"
	PolicyProportional = "proportional"
)

// ThresholdPolicy awards a flat amount when the score percentage clears
// MinPercent, and nothing otherwise.
type ThresholdPolicy struct {
	MinPercent int   // exclusive lower bound on the 0-100 score
	Reward     int64 // tokens awarded above the threshold
}

// Tokens implements RewardPolicy.
func (p ThresholdPolicy) Tokens(correct, total int) int64 {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct*100/total > p.MinPercent {
		return p.Reward
	}
	return 0
}

// ProportionalPolicy awards a fixed amount per correct answer.
type ProportionalPolicy struct {
	TokensPerCorrect int64
}

// Tokens implements RewardPolicy.
func (p ProportionalPolicy) Tokens(correct, total int) int64 {
	if total <= 0 || correct <= 0 {
		return 0
	}
	return int64(correct) * p.TokensPerCorrect
}

// NewPolicy builds the reward policy selected by name. thresholdPercent and
// thresholdReward configure the threshold policy, tokensPerCorrect the
// proportional one.
func NewPolicy(name string, thresholdPercent int, thresholdReward, tokensPerCorrect int64) (RewardPolicy, error) {
	switch name {
	case PolicyThreshold:
		return ThresholdPolicy{MinPercent: thresholdPercent, Reward: thresholdReward}, nil
	case PolicyProportional:
		return ProportionalPolicy{TokensPerCorrect: tokensPerCorrect}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}
