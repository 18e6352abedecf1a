package postgres

import (
	"strings"
	"testing"

	"voltride-service/internal/domain/catalog"
)

func TestModelConditionsPublicAlwaysExcludesSoftDeleted(t *testing.T) {
	conditions, _ := modelConditions(&catalog.ListFilters{}, true)

	joined := strings.Join(conditions, " AND ")
	if !strings.Contains(joined, "deleted_at IS NULL") {
		t.Fatalf("public listing must exclude soft-deleted rows, got: %s", joined)
	}
	if !strings.Contains(joined, "status = 'active'") {
		t.Fatalf("public listing must filter on active status, got: %s", joined)
	}
}

func TestModelConditionsPublicIgnoresStatusFilter(t *testing.T) {
	// A caller-supplied status can never widen the public view.
	conditions, args := modelConditions(&catalog.ListFilters{Status: "draft", IncludeDeleted: true}, true)

	joined := strings.Join(conditions, " AND ")
	if !strings.Contains(joined, "deleted_at IS NULL") || !strings.Contains(joined, "status = 'active'") {
		t.Fatalf("public gates missing: %s", joined)
	}
	if len(args) != 0 {
		t.Fatalf("public listing should take no filter args, got %v", args)
	}
}

func TestModelConditionsAdminDefaultsExcludeDeleted(t *testing.T) {
	conditions, _ := modelConditions(&catalog.ListFilters{}, false)
	joined := strings.Join(conditions, " AND ")
	if !strings.Contains(joined, "deleted_at IS NULL") {
		t.Fatalf("admin listing should exclude soft-deleted rows by default, got: %s", joined)
	}
}

func TestModelConditionsAdminCanIncludeDeleted(t *testing.T) {
	conditions, _ := modelConditions(&catalog.ListFilters{IncludeDeleted: true}, false)
	joined := strings.Join(conditions, " AND ")
	if strings.Contains(joined, "deleted_at IS NULL") {
		t.Fatalf("include_deleted should drop the soft-delete gate, got: %s", joined)
	}
}
