package utils

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		total       int64
		wantPage    int
		wantPages   int
		wantOffset  int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"first page of many", "1", 35, 1, 4, 0, true, false},
		{"middle page", "2", 35, 2, 4, 10, true, true},
		{"last partial page", "4", 35, 4, 4, 30, false, true},
		{"empty param lands on first page", "", 35, 1, 4, 0, true, false},
		{"non-numeric clamps to first page", "abc", 35, 1, 4, 0, true, false},
		{"page zero clamps to first page", "0", 35, 1, 4, 0, true, false},
		{"negative clamps to first page", "-3", 35, 1, 4, 0, true, false},
		{"beyond last clamps to last page", "99", 35, 4, 4, 30, false, true},
		{"empty result set still has one page", "5", 0, 1, 1, 0, false, false},
		{"exact multiple of page size", "3", 30, 3, 3, 20, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.raw, tt.total, PerPage)
			if p.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.wantPage)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", p.Offset, tt.wantOffset)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}

func TestPaginateFullPageSize(t *testing.T) {
	// Every page except possibly the last holds exactly PerPage items.
	p := Paginate("2", 35, PerPage)
	remaining := p.TotalCount - int64(p.Offset)
	if remaining < int64(PerPage) {
		t.Fatalf("page 2 of 35 items should be full, %d remaining after offset", remaining)
	}

	last := Paginate("4", 35, PerPage)
	if got := last.TotalCount - int64(last.Offset); got != 5 {
		t.Errorf("last page should hold 5 items, got %d", got)
	}
}
