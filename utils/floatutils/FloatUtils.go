// Package floatutils provides utilities for working with floats
package floatutils

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}

// ArgMax gets the index of the first maximal value in a slice of
// float64. Values that merely tie the running maximum never replace
// the first index found, so greedy selections built on ArgMax break
// ties in favour of the earliest entry.
func ArgMax(values []float64) int {
	max, index := values[0], 0

	for i, value := range values {
		if value > max {
			max = value
			index = i
		}
	}
	return index
}
