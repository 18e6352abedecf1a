package utils

import (
	"strings"
	"testing"
)

func TestEstimateReadTimeRoundsUp(t *testing.T) {
	content := strings.Repeat("word ", 400)
	if got := EstimateReadTime(content); got != 2 {
		t.Fatalf("400 words should read as 2 minutes, got %d", got)
	}
}

func TestEstimateReadTimeExactBoundary(t *testing.T) {
	content := strings.Repeat("word ", 200)
	if got := EstimateReadTime(content); got != 1 {
		t.Fatalf("200 words should read as 1 minute, got %d", got)
	}
}

func TestEstimateReadTimeMinimumOneMinute(t *testing.T) {
	if got := EstimateReadTime(""); got != 1 {
		t.Fatalf("empty content should read as 1 minute, got %d", got)
	}
	if got := EstimateReadTime("short post"); got != 1 {
		t.Fatalf("short content should read as 1 minute, got %d", got)
	}
}

func TestEstimateReadTimeJustOverBoundary(t *testing.T) {
	content := strings.Repeat("word ", 201)
	if got := EstimateReadTime(content); got != 2 {
		t.Fatalf("201 words should round up to 2 minutes, got %d", got)
	}
}
