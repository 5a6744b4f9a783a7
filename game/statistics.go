package game

import (
	"math"
	"slices"
)

// Mean returns the average of the samples, or zero if there are none.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Variance returns the population variance of the samples.
func Variance(data []float64) (variance float64) {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	return variance / float64(len(data))
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Percentile returns the sample below which p percent of the samples fall, using the nearest rank. data
// is left untouched.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	rank := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	return sorted[max(0, min(rank, len(sorted)-1))]
}
