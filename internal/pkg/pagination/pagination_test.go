package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsValues(t *testing.T) {
	tests := []struct {
		name           string
		page, pageSize int
		want           Params
	}{
		{"defaults", 0, 0, Params{Page: 1, PageSize: 20}},
		{"negative", -3, -1, Params{Page: 1, PageSize: 20}},
		{"max size", 2, 500, Params{Page: 2, PageSize: 100}},
		{"exact max", 1, 100, Params{Page: 1, PageSize: 100}},
		{"custom", 4, 15, Params{Page: 4, PageSize: 15}},
		{"huge page", math.MaxInt, 100, Params{Page: MaxPage, PageSize: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.pageSize))
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(New(2, 10), 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = NewMeta(New(3, 10), 25)
	assert.False(t, meta.HasNext)

	meta = NewMeta(New(1, 20), 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Slice(items, New(2, 2)))
	assert.Equal(t, []int{5}, Slice(items, New(3, 2)))
	assert.Empty(t, Slice(items, New(4, 2)))
}

func TestOffsetNeverOverflows(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantLen int
	}{
		{"clamped", New(math.MaxInt, MaxPageSize), 0},
		{"unclamped literal", Params{Page: math.MaxInt, PageSize: MaxPageSize}, 0},
		{"min int", Params{Page: math.MinInt, PageSize: 10}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, tt.p.Offset(), 0)
			assert.LessOrEqual(t, tt.p.Offset(), (MaxPage-1)*MaxPageSize)
			assert.Len(t, Slice([]int{1, 2, 3}, tt.p), tt.wantLen)
		})
	}
}

func TestNewPageNeverReturnsNilItems(t *testing.T) {
	page := NewPage[string](nil, New(1, 20), 0)
	assert.NotNil(t, page.Items)
}
