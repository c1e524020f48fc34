// Package quality computes vendor quality scores and the top-vendor badge
// from aggregated order and review history. All functions are pure; the
// aggregation job feeds them and persists the result.
package quality

import "math"

// Weights of the composite score components.
const (
	weightCompletion = 0.30
	weightRating     = 0.25
	weightRepeat     = 0.25
	weightActivity   = 0.20
)

// Thresholds gate the score floor and the top-vendor badge.
type Thresholds struct {
	MinOrders         int64   // Below this the quality score is forced to 0.
	MinQualityScore   float64 // Badge: minimum composite score (0-100).
	MinCompletionRate float64 // Badge: minimum completion rate as a fraction.
	MinAvgRating      float64 // Badge: minimum average rating (0-5).
}

// DefaultThresholds returns the standard marketplace thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinOrders:         10,
		MinQualityScore:   75,
		MinCompletionRate: 0.90,
		MinAvgRating:      4.5,
	}
}

// Inputs are the raw per-vendor counts collected by the aggregator.
type Inputs struct {
	TotalOrders     int64
	CompletedOrders int64
	UniqueCustomers int64
	RepeatCustomers int64
	AvgRating       float64
}

// CompletionRate returns completed orders as a fraction of total orders,
// 0 when the vendor has no orders.
func (in Inputs) CompletionRate() float64 {
	if in.TotalOrders == 0 {
		return 0
	}

	return float64(in.CompletedOrders) / float64(in.TotalOrders)
}

// repeatRate returns repeat customers as a fraction of unique customers,
// 0 when the vendor has no customers.
func (in Inputs) repeatRate() float64 {
	if in.UniqueCustomers == 0 {
		return 0
	}

	return float64(in.RepeatCustomers) / float64(in.UniqueCustomers)
}

// activityScore maps order volume onto 0-100 with logarithmic damping.
func (in Inputs) activityScore() float64 {
	return math.Min(100, math.Log10(float64(in.TotalOrders)+1)*50)
}

// Score computes the weighted composite quality score, rounded to two
// decimals. Vendors below the minimum order count score 0 unconditionally.
func Score(in Inputs, th Thresholds) float64 {
	if in.TotalOrders < th.MinOrders {
		return 0
	}

	completion := in.CompletionRate() * 100
	rating := in.AvgRating / 5 * 100
	repeat := in.repeatRate() * 100
	activity := in.activityScore()

	score := completion*weightCompletion +
		rating*weightRating +
		repeat*weightRepeat +
		activity*weightActivity

	return math.Round(score*100) / 100
}

// IsTop reports whether a vendor earns the top-vendor badge. All conditions
// must hold simultaneously.
func IsTop(in Inputs, score float64, th Thresholds) bool {
	return in.TotalOrders >= th.MinOrders &&
		score >= th.MinQualityScore &&
		in.CompletionRate() >= th.MinCompletionRate &&
		in.AvgRating >= th.MinAvgRating
}
