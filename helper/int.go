package helper

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// IntSliceToString joins integers with ", ".
func IntSliceToString[T constraints.Integer](input []T) string {
	b := strings.Builder{}

	for _, v := range input {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString(itoa(v))
	}

	return b.String()
}

// Plural returns singular when count is 1, plural otherwise.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}

	return plural
}

func itoa[T constraints.Integer](v T) string {
	var zero T

	if ^zero < zero {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
