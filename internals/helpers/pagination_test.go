package helper

import (
	"net/http/httptest"
	"testing"
)

func TestParseWithClampsPerPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=3&per_page=999", nil)
	p := ParseWith(r, "created_at", "desc", DefaultOpts)

	if p.Page != 3 {
		t.Fatalf("page = %d, want 3", p.Page)
	}
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Fatalf("per_page = %d, want clamped to %d", p.PerPage, DefaultOpts.MaxPerPage)
	}
	if p.Offset() != 2*DefaultOpts.MaxPerPage {
		t.Fatalf("offset = %d", p.Offset())
	}
}

func TestParseWithDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=-2&per_page=junk&order=sideways", nil)
	p := ParseWith(r, "created_at", "asc", DefaultOpts)

	if p.Page != 1 {
		t.Fatalf("bad page should fall back to 1, got %d", p.Page)
	}
	if p.PerPage != DefaultOpts.DefaultPerPage {
		t.Fatalf("per_page = %d, want default %d", p.PerPage, DefaultOpts.DefaultPerPage)
	}
	if p.SortOrder != "asc" {
		t.Fatalf("order = %q, want default asc", p.SortOrder)
	}
}

func TestParseWithAllRequiresOptIn(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?per_page=all", nil)

	p := ParseWith(r, "created_at", "desc", DefaultOpts)
	if p.All {
		t.Fatalf("per_page=all must not work without AllowAll")
	}

	p = ParseWith(r, "created_at", "desc", ExportOpts)
	if !p.All {
		t.Fatalf("ExportOpts should honor per_page=all")
	}
	if p.PerPage != ExportOpts.AllHardCap {
		t.Fatalf("all per_page = %d, want hard cap %d", p.PerPage, ExportOpts.AllHardCap)
	}
	if p.Page != 1 {
		t.Fatalf("all mode should pin page to 1, got %d", p.Page)
	}
}

func TestBuildMetaMath(t *testing.T) {
	p := Params{Page: 2, PerPage: 25}
	m := BuildMeta(51, p)

	if m.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", m.TotalPages)
	}
	if !m.HasNext || !m.HasPrev {
		t.Fatalf("page 2 of 3 should have both neighbors: %+v", m)
	}
	if m.NextPage == nil || *m.NextPage != 3 {
		t.Fatalf("next_page = %v, want 3", m.NextPage)
	}
	if m.PrevPage == nil || *m.PrevPage != 1 {
		t.Fatalf("prev_page = %v, want 1", m.PrevPage)
	}
}

func TestBuildMetaBoundaries(t *testing.T) {
	m := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if m.TotalPages != 0 || m.HasNext || m.HasPrev {
		t.Fatalf("empty result meta wrong: %+v", m)
	}
	if m.NextPage != nil || m.PrevPage != nil {
		t.Fatalf("empty result should omit page links")
	}

	// exact multiple: 50 rows over 25 per page is 2 pages, not 3
	m = BuildMeta(50, Params{Page: 2, PerPage: 25})
	if m.TotalPages != 2 {
		t.Fatalf("total_pages = %d, want 2", m.TotalPages)
	}
	if m.HasNext {
		t.Fatalf("last page should not have next")
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"date":       "editorial_published_on",
		"created_at": "editorial_created_at",
	}

	p := Params{SortBy: "date", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if clause != "ORDER BY editorial_published_on ASC" {
		t.Fatalf("clause = %q", clause)
	}

	// unknown key falls back to the default column
	p = Params{SortBy: "drop table", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause fallback: %v", err)
	}
	if clause != "ORDER BY editorial_created_at DESC" {
		t.Fatalf("fallback clause = %q", clause)
	}

	if _, err := p.SafeOrderClause(map[string]string{}, "missing"); err == nil {
		t.Fatalf("expected error when the default key is not whitelisted")
	}
}
