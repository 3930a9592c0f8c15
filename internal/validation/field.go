package validation

import "strconv"

// NumericField interprets user text destined for a numeric field. Text that
// does not parse as an integer keeps the field's previous value; the edit is
// dropped silently rather than surfaced as an error, matching how the input
// widgets have always behaved.
func NumericField(prev int, input string) int {
	if input == "" {
		return prev
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return prev
	}

	return n
}
