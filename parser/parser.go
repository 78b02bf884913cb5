package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse converts a line like "1, 2,,abc,3" into its integers, in order.
// Tokens that are not integers are dropped.
func Parse(line string) []int {
	numbers, _ := ParseWithRejects(line)

	return numbers
}

// ParseWithRejects behaves like Parse and also returns tokens which could not be converted.
func ParseWithRejects(line string) ([]int, []string) {
	numbers := []int{}
	var rejected []string

	for _, token := range strings.FieldsFunc(line, isSeparator) {
		n, err := strconv.Atoi(token)
		if err != nil {
			rejected = append(rejected, token)
			continue
		}

		numbers = append(numbers, n)
	}

	return numbers, rejected
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
