package stat

import (
	"golang.org/x/exp/constraints"
)

// ModeResult holds every value tied for the highest frequency, ascending.
type ModeResult[T constraints.Integer] struct {
	Values    []T
	Frequency int
}

// Mode walks a sorted copy of numbers and keeps the longest runs of equal values.
// When all values are distinct each of them is a mode with frequency 1.
func Mode[T constraints.Integer](numbers []T) ModeResult[T] {
	res := ModeResult[T]{Values: []T{}}

	if len(numbers) == 0 {
		return res
	}

	sorted := sortedCopy(numbers)

	run := 1

	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1] {
			run++
			continue
		}

		switch {
		case run > res.Frequency:
			res.Values = append(res.Values[:0], sorted[i-1])
			res.Frequency = run
		case run == res.Frequency:
			res.Values = append(res.Values, sorted[i-1])
		}

		run = 1
	}

	return res
}

// IsMultimodal reports whether several values share the highest frequency.
func (m ModeResult[T]) IsMultimodal() bool {
	return len(m.Values) > 1
}
