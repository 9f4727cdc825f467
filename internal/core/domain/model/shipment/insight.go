package shipment

import (
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Risk score bounds. The score is a heuristic estimate of mishandling or
// delay likelihood, not a statistical model output.
const (
	RiskScoreMin = 0
	RiskScoreMax = 100
)

// ErrInsightIsNotConstructed is returned when using a zero-value Insight.
var ErrInsightIsNotConstructed = errs.NewValueIsRequiredError(
	"insight must be created via NewInsight constructor")

// Insight is the heuristic risk assessment of a shipment: a bounded score
// and a derived recommendation list. Recommendations are regenerated as a
// full replacement whenever score-affecting inputs change, never appended to.
type Insight struct {
	riskScore       int
	recommendations []string

	guard guard.ConstructorGuard
}

// NewInsight creates a validated Insight. The score must lie within
// [RiskScoreMin, RiskScoreMax].
func NewInsight(riskScore int, recommendations []string) (Insight, error) {
	if riskScore < RiskScoreMin || riskScore > RiskScoreMax {
		return Insight{}, errs.NewValueIsOutOfRangeError(
			"riskScore", riskScore, RiskScoreMin, RiskScoreMax)
	}

	insight := Insight{
		riskScore:       riskScore,
		recommendations: make([]string, len(recommendations)),
		guard:           guard.NewConstructorGuard(),
	}
	copy(insight.recommendations, recommendations)

	return insight, nil
}

// Validate checks that the insight was created through its constructor.
func (i Insight) Validate() error {
	return i.guard.Validate(ErrInsightIsNotConstructed)
}

// RiskScore returns the bounded heuristic score.
func (i Insight) RiskScore() int {
	return i.riskScore
}

// Recommendations returns a copy of the recommendation list.
func (i Insight) Recommendations() []string {
	recommendations := make([]string, len(i.recommendations))
	copy(recommendations, i.recommendations)
	return recommendations
}
