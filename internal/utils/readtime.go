package utils

import "strings"

const wordsPerMinute = 200

// EstimateReadTime returns the estimated reading time in whole minutes for
// the given content, rounding up. Empty content still reads as one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}

	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	return minutes
}
