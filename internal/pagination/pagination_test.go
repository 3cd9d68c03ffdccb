package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", Params{}, 1, 10},
		{"negative page clamps to 1", Params{Page: -3, Limit: 25}, 1, 25},
		{"zero limit gets default", Params{Page: 4}, 4, 10},
		{"limit above max clamps to 100", Params{Page: 2, Limit: 500}, 2, 100},
		{"limit at max stays", Params{Page: 1, Limit: 100}, 1, 100},
		{"valid window untouched", Params{Page: 7, Limit: 15}, 7, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 60, Params{Page: 4, Limit: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty set has zero pages", 0, 10, 0},
		{"exact multiple", 100, 10, 10},
		{"partial last page", 101, 10, 11},
		{"single item", 1, 10, 1},
		{"limit of one", 5, 1, 5},
		{"total below limit", 3, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

// TestTotalPagesCeiling exercises the ceiling property across the full limit range.
func TestTotalPagesCeiling(t *testing.T) {
	for limit := 1; limit <= 100; limit++ {
		for _, total := range []int64{0, 1, 9, 10, 11, 99, 100, 101, 1000} {
			got := TotalPages(total, limit)
			want := int((total + int64(limit) - 1) / int64(limit))
			assert.Equal(t, want, got)
			if total == 0 {
				assert.Zero(t, got)
			} else {
				assert.Positive(t, got)
			}
		}
	}
}
