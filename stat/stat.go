package stat

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Mean returns arithmetic mean of numbers, 0 for empty input.
func Mean[T constraints.Integer](numbers []T) float64 {
	if len(numbers) == 0 {
		return float64(0)
	}

	sum := new(big.Int)
	v := new(big.Int)

	for _, n := range numbers {
		sum.Add(sum, toBig(v, n))
	}

	mean, _ := new(big.Float).SetPrec(53).Quo(new(big.Float).SetInt(sum), big.NewFloat(float64(len(numbers)))).Float64()

	return mean
}

// Median works on a sorted copy, numbers are left untouched.
func Median[T constraints.Integer](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0
	}

	sorted := sortedCopy(numbers)
	l := len(sorted)

	if l%2 == 0 {
		return (float64(sorted[l/2-1]) + float64(sorted[l/2])) / float64(2)
	}

	return float64(sorted[l/2])
}

// Maximum returns the largest value, 0 for empty input.
func Maximum[T constraints.Integer](numbers []T) T {
	if len(numbers) == 0 {
		return 0
	}

	max := numbers[0]

	for _, n := range numbers[1:] {
		if n > max {
			max = n
		}
	}

	return max
}

// Minimum returns the smallest value, 0 for empty input.
func Minimum[T constraints.Integer](numbers []T) T {
	if len(numbers) == 0 {
		return 0
	}

	min := numbers[0]

	for _, n := range numbers[1:] {
		if n < min {
			min = n
		}
	}

	return min
}

// Range is the distance between the largest and the smallest value.
// Unsigned result holds the full distance of any integer type, e.g. MaxInt64 - MinInt64.
func Range[T constraints.Integer](numbers []T) uint64 {
	return uint64(Maximum(numbers)) - uint64(Minimum(numbers))
}

// Variance returns population variance, 0 for empty input.
func Variance[T constraints.Integer](numbers []T) float64 {
	if len(numbers) == 0 {
		return float64(0)
	}

	mean := Mean(numbers)

	var acc float64

	for _, n := range numbers {
		d := float64(n) - mean
		acc += d * d
	}

	return acc / float64(len(numbers))
}

// StdDev returns population standard deviation.
func StdDev[T constraints.Integer](numbers []T) float64 {
	return math.Sqrt(Variance(numbers))
}

func isSigned[T constraints.Integer]() bool {
	var zero T

	return ^zero < zero
}

func toBig[T constraints.Integer](dst *big.Int, n T) *big.Int {
	if isSigned[T]() {
		return dst.SetInt64(int64(n))
	}

	return dst.SetUint64(uint64(n))
}

func sortedCopy[T constraints.Integer](numbers []T) []T {
	c := slices.Clone(numbers)
	slices.Sort(c)

	return c
}
