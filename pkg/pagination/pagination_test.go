package pagination

import "testing"

func TestNormalizeClampsLimit(t *testing.T) {
	p := Normalize(Params{Page: 1, Limit: 500})
	if p.Limit != MaxLimit {
		t.Fatalf("limit 500 should clamp to %d, got %d", MaxLimit, p.Limit)
	}

	p = Normalize(Params{Page: 1, Limit: -3})
	if p.Limit != DefaultLimit {
		t.Fatalf("negative limit should fall back to %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestNormalizeClampsPage(t *testing.T) {
	p := Normalize(Params{Page: 0, Limit: 10})
	if p.Page != 1 {
		t.Fatalf("page 0 should clamp to 1, got %d", p.Page)
	}
}

func TestOffset(t *testing.T) {
	p := Normalize(Params{Page: 3, Limit: 20})
	if got := p.Offset(); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first of many", page: 1, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle", page: 2, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last", page: 3, limit: 10, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "empty", page: 1, limit: 10, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "exact fit", page: 2, limit: 5, total: 10, totalPages: 2, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(Params{Page: tt.page, Limit: tt.limit}, tt.total)
			if meta.TotalPages != tt.totalPages {
				t.Fatalf("totalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext {
				t.Fatalf("hasNext = %v, want %v", meta.HasNext, tt.hasNext)
			}
			if meta.HasPrev != tt.hasPrev {
				t.Fatalf("hasPrev = %v, want %v", meta.HasPrev, tt.hasPrev)
			}
			if meta.Total != tt.total {
				t.Fatalf("total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}
