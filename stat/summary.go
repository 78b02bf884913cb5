package stat

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// Summary carries every statistic of one dataset, serialised with the summary block.
type Summary struct {
	Data          []int   `json:"data"`
	Size          int     `json:"size"`
	Mean          float64 `json:"mean"`
	Median        float64 `json:"median"`
	Mode          []int   `json:"mode"`
	ModeFrequency int     `json:"mode_frequency"`

	Range    uint64  `json:"range"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Distinct int     `json:"distinct"`
}

// Summarize computes all statistics of numbers at once.
func Summarize(numbers []int) Summary {
	mode := Mode(numbers)

	data := slices.Clone(numbers)
	if data == nil {
		data = []int{}
	}

	return Summary{
		Data:          data,
		Size:          len(numbers),
		Mean:          Mean(numbers),
		Median:        Median(numbers),
		Mode:          mode.Values,
		ModeFrequency: mode.Frequency,
		Range:         Range(numbers),
		Variance:      Variance(numbers),
		StdDev:        StdDev(numbers),
		Distinct:      mapset.NewThreadUnsafeSet(numbers...).Cardinality(),
	}
}
