package source

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is a parsed line-number prefix: its integer value and the digit
// width it occupied in the text.
type Number struct {
	Value int
	Width int
}

// Digits returns the number of digits needed to render the value.
func (n Number) Digits() int {
	return len(strconv.Itoa(n.Value))
}

// FieldWidth returns the total width of the rendered number field under
// the given column policy, including the separating space. The field is
// never narrower than the digits plus one separator; the policy widens it
// but cannot truncate.
func (n Number) FieldWidth(cols int) int {
	w := n.Digits() + 1
	if cols > w {
		w = cols
	}
	return w
}

// HasNumber reports whether text carries a line-number prefix: after
// leading whitespace, the next character is a digit.
func HasNumber(text string) bool {
	s := strings.TrimLeft(text, " \t")
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// StripNumber removes the leading line number from text. The returned
// remainder starts at the first non-space character after the digit run
// (or after leading whitespace when no number is present); ok reports
// whether a number was found.
func StripNumber(text string) (rest string, num Number, ok bool) {
	s := strings.TrimLeft(text, " \t")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s, Number{}, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		// Digit run too long to represent; treat as unnumbered.
		return s, Number{}, false
	}
	return strings.TrimLeft(s[i:], " \t"), Number{Value: v, Width: i}, true
}

// Format renders a line number under the column policy. With cols == 0 the
// bare digits are returned. Otherwise the digits are right-aligned within
// cols-1 columns followed by exactly one separating space, so the total
// width is cols. Digits are never truncated: a number too wide for the
// policy widens the field instead.
func Format(n, cols int) string {
	digits := strconv.Itoa(n)
	if cols == 0 {
		return digits
	}
	w := cols - 1
	if len(digits) > w {
		w = len(digits)
	}
	return fmt.Sprintf("%*s ", w, digits)
}

// FormatField renders the full number field including the separating
// space, regardless of policy. It is what line assembly uses; Format is
// the bare codec.
func FormatField(n, cols int) string {
	if cols == 0 {
		return strconv.Itoa(n) + " "
	}
	return Format(n, cols)
}
