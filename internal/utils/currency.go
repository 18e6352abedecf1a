package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatINR formats an amount in rupees with Indian digit grouping:
// the last three digits stand alone, every pair above them gets a comma
// (1234567 -> ₹12,34,567). Paise are dropped; catalog prices are whole rupees.
func FormatINR(amount float64) string {
	rounded := int64(math.Round(amount))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	s := strconv.FormatInt(rounded, 10)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}

		s = ""
		for _, g := range groups {
			s += g + ","
		}
		s += tail
	}

	if negative {
		return fmt.Sprintf("-₹%s", s)
	}
	return fmt.Sprintf("₹%s", s)
}
