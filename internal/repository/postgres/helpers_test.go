package postgres

import "testing"

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	if page != 1 || size != 20 {
		t.Fatalf("defaults wrong: page=%d size=%d", page, size)
	}

	page, size = normalizePage(3, 500)
	if page != 3 || size != 100 {
		t.Fatalf("clamping wrong: page=%d size=%d", page, size)
	}
}

func TestSortColumnWhitelist(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "name": true}

	if got := sortColumn("name", allowed, "created_at"); got != "name" {
		t.Fatalf("allowed column rejected: %s", got)
	}
	if got := sortColumn("id; DROP TABLE leads", allowed, "created_at"); got != "created_at" {
		t.Fatalf("unsafe column not rejected: %s", got)
	}
	if got := sortColumn("", allowed, "created_at"); got != "created_at" {
		t.Fatalf("empty column should fall back: %s", got)
	}
}

func TestSortDirection(t *testing.T) {
	if got := sortDirection("asc"); got != "ASC" {
		t.Fatalf("asc not honored: %s", got)
	}
	if got := sortDirection("ASC"); got != "ASC" {
		t.Fatalf("case-insensitive asc not honored: %s", got)
	}
	if got := sortDirection("sideways"); got != "DESC" {
		t.Fatalf("unknown direction should default to DESC: %s", got)
	}
}
