package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_FloorBelowMinOrders(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name string
		in   Inputs
	}{
		{
			name: "no orders",
			in:   Inputs{},
		},
		{
			name: "nine perfect orders",
			in: Inputs{
				TotalOrders:     9,
				CompletedOrders: 9,
				UniqueCustomers: 9,
				RepeatCustomers: 9,
				AvgRating:       5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, Score(tt.in, th))
		})
	}
}

func TestScore_WeightedComposite(t *testing.T) {
	th := DefaultThresholds()
	in := Inputs{
		TotalOrders:     20,
		CompletedOrders: 19,
		UniqueCustomers: 15,
		RepeatCustomers: 10,
		AvgRating:       4.8,
	}

	// completion 95%, rating 96%, repeat 66.67%, activity log10(21)*50.
	activity := math.Min(100, math.Log10(21)*50)
	want := 95*0.30 + 96*0.25 + (10.0/15.0*100)*0.25 + activity*0.20

	got := Score(in, th)
	assert.InDelta(t, want, got, 0.01)
	assert.True(t, IsTop(in, got, th))
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	th := DefaultThresholds()
	in := Inputs{
		TotalOrders:     20,
		CompletedOrders: 19,
		UniqueCustomers: 15,
		RepeatCustomers: 10,
		AvgRating:       4.8,
	}

	got := Score(in, th)
	assert.Equal(t, got, math.Round(got*100)/100)
}

func TestIsTop_EachThresholdIndependentlyRequired(t *testing.T) {
	th := DefaultThresholds()

	strong := Inputs{
		TotalOrders:     100,
		CompletedOrders: 100,
		UniqueCustomers: 80,
		RepeatCustomers: 60,
		AvgRating:       5,
	}
	assert.True(t, IsTop(strong, Score(strong, th), th))

	tests := []struct {
		name   string
		mutate func(in Inputs) Inputs
	}{
		{
			name: "too few orders",
			mutate: func(in Inputs) Inputs {
				in.TotalOrders = th.MinOrders - 1
				in.CompletedOrders = in.TotalOrders

				return in
			},
		},
		{
			name: "completion rate below threshold",
			mutate: func(in Inputs) Inputs {
				in.CompletedOrders = in.TotalOrders * 80 / 100

				return in
			},
		},
		{
			name: "rating below threshold",
			mutate: func(in Inputs) Inputs {
				in.AvgRating = 4.4

				return in
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.mutate(strong)
			assert.False(t, IsTop(in, Score(in, th), th))
		})
	}
}

func TestIsTop_FalseWhenScoreBelowThreshold(t *testing.T) {
	th := DefaultThresholds()

	// High completion and rating but no repeat customers and low volume keeps
	// the composite under the badge threshold.
	in := Inputs{
		TotalOrders:     10,
		CompletedOrders: 10,
		UniqueCustomers: 10,
		RepeatCustomers: 0,
		AvgRating:       4.6,
	}

	score := Score(in, th)
	assert.Less(t, score, th.MinQualityScore)
	assert.False(t, IsTop(in, score, th))
}
