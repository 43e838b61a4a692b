package views

import "math"

// ScoreBucket labels a performance score band.
type ScoreBucket string

const (
	BucketExcellent ScoreBucket = "excellent"
	BucketGood      ScoreBucket = "good"
	BucketFair      ScoreBucket = "fair"
	BucketPoor      ScoreBucket = "poor"
)

// Mean averages the values. Empty input yields 0, never NaN.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round rounds to the nearest integer for display.
func Round(v float64) int {
	return int(math.Round(v))
}

// BucketFor maps a score onto its display band. Bounds are half-open:
// >=90 excellent, [80,90) good, [70,80) fair, <70 poor.
func BucketFor(score float64) ScoreBucket {
	switch {
	case score >= 90:
		return BucketExcellent
	case score >= 80:
		return BucketGood
	case score >= 70:
		return BucketFair
	default:
		return BucketPoor
	}
}

// BucketCounts tallies scores per band. All four bands are always present
// in the result so pages render zero counts instead of missing bars.
func BucketCounts(scores []float64) map[ScoreBucket]int {
	counts := map[ScoreBucket]int{
		BucketExcellent: 0,
		BucketGood:      0,
		BucketFair:      0,
		BucketPoor:      0,
	}
	for _, s := range scores {
		counts[BucketFor(s)]++
	}
	return counts
}
