package format

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"

	"github.com/AirHelp/statcalc/helper"
	"github.com/AirHelp/statcalc/stat"
)

const noModeText = "No mode (empty dataset)"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options selects optional report blocks.
type Options struct {
	Extended bool
	Summary  bool
}

// Decimal renders value with two fractional digits.
func Decimal(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// Dataset renders numbers as "[1, 2, 3]".
func Dataset[T constraints.Integer](numbers []T) string {
	return fmt.Sprintf("[%s]", helper.IntSliceToString(numbers))
}

// Mode phrases m for humans, tied values are listed together.
func Mode[T constraints.Integer](m stat.ModeResult[T]) string {
	switch {
	case len(m.Values) == 0:
		return noModeText
	case m.IsMultimodal():
		return fmt.Sprintf("%s (each appears %d times)", Dataset(m.Values), m.Frequency)
	default:
		return fmt.Sprintf("%d (appears %d %s)", m.Values[0], m.Frequency, helper.Plural(m.Frequency, "time", "times"))
	}
}

// Size renders element count with thousands separators, e.g. "12,345 elements".
func Size(count int) string {
	return fmt.Sprintf("%s %s", humanize.Comma(int64(count)), helper.Plural(count, "element", "elements"))
}

// SummaryJSON renders s as indented JSON document.
func SummaryJSON(s stat.Summary) (string, error) {
	out, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}

	return string(out), nil
}

// Report writes statistics of numbers to w, one per line.
func Report(w io.Writer, numbers []int, opts Options) error {
	lines := []string{
		fmt.Sprintf("Data: %s", Dataset(numbers)),
		fmt.Sprintf("Size: %s", Size(len(numbers))),
		fmt.Sprintf("Mean: %s", Decimal(stat.Mean(numbers))),
		fmt.Sprintf("Median: %s", Decimal(stat.Median(numbers))),
		fmt.Sprintf("Mode: %s", Mode(stat.Mode(numbers))),
	}

	if opts.Extended {
		lines = append(lines,
			fmt.Sprintf("Range: %d", stat.Range(numbers)),
			fmt.Sprintf("Variance: %s", Decimal(stat.Variance(numbers))),
			fmt.Sprintf("Standard Deviation: %s", Decimal(stat.StdDev(numbers))),
		)
	}

	if opts.Summary {
		summary, err := SummaryJSON(stat.Summarize(numbers))
		if err != nil {
			return err
		}

		lines = append(lines, fmt.Sprintf("Summary: %s", summary))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
