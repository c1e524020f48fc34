package entity

import "time"

// VendorMetrics is the persisted result of one quality-aggregation run for a
// vendor. It is recomputed wholesale from order and review history and never
// hand-edited.
type VendorMetrics struct {
	VendorID        int64     `json:"vendor_id"`
	TotalOrders     int64     `json:"total_orders"`
	CompletedOrders int64     `json:"completed_orders"`
	UniqueCustomers int64     `json:"unique_customers"`
	RepeatCustomers int64     `json:"repeat_customers"`
	AvgRating       float64   `json:"avg_rating"`
	QualityScore    float64   `json:"quality_score"` // Weighted composite, 0-100, 2 decimals.
	IsTop           bool      `json:"is_top"`        // Top-vendor badge.
	ComputedAt      time.Time `json:"computed_at"`
}
