package services

import (
	"time"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/shipment"
)

// Risk factor weights. The score is the sum of all applicable factors,
// capped at shipment.RiskScoreMax.
const (
	HighValueRiskPoints   = 20
	FragileRiskPoints     = 15
	HazardousRiskPoints   = 30
	CrossBorderRiskPoints = 10
	OverdueRiskPoints     = 25

	// HighValueThreshold is the declared value above which cargo counts as
	// high-value.
	HighValueThreshold = 10_000.0

	// OverduePickupAge is how long after pickup a shipment may stay
	// undelivered before it counts as overdue.
	OverduePickupAge = 7 * 24 * time.Hour

	// HighRiskScoreThreshold is the score above which comprehensive
	// insurance is recommended.
	HighRiskScoreThreshold = 50
)

// RiskScorer is a domain service that derives a heuristic risk assessment
// from a shipment's cargo and timeline. The scoring is deterministic and
// additive; it is an estimate of mishandling or delay likelihood, not a
// learned model.
//
// Each call regenerates the recommendation list from scratch, so callers can
// re-assess after every cargo or timeline change without accumulating stale
// advice.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() RiskScorer {
	return RiskScorer{}
}

// Assess scores the shipment as of now and returns a fresh insight.
func (r RiskScorer) Assess(s *shipment.Shipment, now time.Time) (shipment.Insight, error) {
	if err := s.Validate(); err != nil {
		return shipment.Insight{}, err
	}

	items := s.Items()
	fragile := cargo.AnyFragile(items)
	overdue := r.isOverdue(s, now)

	score := 0
	if s.TotalValue() > HighValueThreshold {
		score += HighValueRiskPoints
	}
	if fragile {
		score += FragileRiskPoints
	}
	if cargo.AnyHazardous(items) {
		score += HazardousRiskPoints
	}
	if s.IsCrossBorder() {
		score += CrossBorderRiskPoints
	}
	if overdue {
		score += OverdueRiskPoints
	}
	if score > shipment.RiskScoreMax {
		score = shipment.RiskScoreMax
	}

	var recommendations []string
	if score > HighRiskScoreThreshold {
		recommendations = append(recommendations, "recommend comprehensive insurance")
	}
	if fragile {
		recommendations = append(recommendations, "recommend professional packing")
	}
	if overdue {
		recommendations = append(recommendations, "notify customer of delay")
	}

	return shipment.NewInsight(score, recommendations)
}

// isOverdue reports whether the shipment was picked up more than
// OverduePickupAge ago without a recorded delivery.
func (r RiskScorer) isOverdue(s *shipment.Shipment, now time.Time) bool {
	pickupAt := s.ActualPickupAt()
	if pickupAt == nil || s.ActualDeliveryAt() != nil {
		return false
	}
	return now.Sub(*pickupAt) > OverduePickupAge
}
