package calc

import "math/rand"

// RectangleArea returns width * height.
func RectangleArea(width, height int) int {
	return width * height
}

// RandomDimensions returns a width and height between 5 and 24 units.
func RandomDimensions(rng *rand.Rand) (int, int) {
	return rng.Intn(20) + 5, rng.Intn(20) + 5
}

// RandomArray returns n values in [0, limit). A limit below 1 yields zeros.
func RandomArray(rng *rand.Rand, n, limit int) []int {
	if n < 0 {
		n = 0
	}
	if limit < 1 {
		limit = 1
	}
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(limit)
	}
	return values
}

// Sum adds every value.
func Sum(values []int) int {
	total := 0
	for _, value := range values {
		total += value
	}
	return total
}

// Average returns the arithmetic mean, or 0 for an empty slice.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Max returns the largest value and false for an empty slice.
func Max(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := values[0]
	for _, value := range values[1:] {
		if value > best {
			best = value
		}
	}
	return best, true
}

// Min returns the smallest value and false for an empty slice.
func Min(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := values[0]
	for _, value := range values[1:] {
		if value < best {
			best = value
		}
	}
	return best, true
}

// Summary holds the array demo results.
type Summary struct {
	Values  []int
	Sum     int
	Average float64
	Max     int
	Min     int
}

// Summarize computes every statistic of values.
func Summarize(values []int) Summary {
	summary := Summary{
		Values:  values,
		Sum:     Sum(values),
		Average: Average(values),
	}
	summary.Max, _ = Max(values)
	summary.Min, _ = Min(values)
	return summary
}
