package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultLimit},
		{in: -5, want: DefaultLimit},
		{in: 10, want: 10},
		{in: MaxLimit, want: MaxLimit},
		{in: MaxLimit + 1, want: MaxLimit},
	}
	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMetaFor(t *testing.T) {
	meta := MetaFor(3, Params{Page: 1, Limit: 20})
	if meta.Pages != 1 {
		t.Fatalf("expected 1 page for 3 items at limit 20, got %d", meta.Pages)
	}
	if meta.Total != 3 {
		t.Fatalf("unexpected total %d", meta.Total)
	}

	meta = MetaFor(45, Params{Page: 2, Limit: 20})
	if meta.Pages != 3 {
		t.Fatalf("expected 3 pages for 45 items at limit 20, got %d", meta.Pages)
	}

	meta = MetaFor(0, Params{})
	if meta.Pages != 1 || meta.Page != 1 {
		t.Fatalf("empty list should still yield one page, got %+v", meta)
	}
}
