package numpager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ComputePageMarkers(t *testing.T) {
	L, R := JumpLeft, JumpRight
	n := PageNumber

	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		neighbours  int
		want        []PageMarker
	}{
		{
			name:        "both spills around the middle",
			currentPage: 6, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), L, n(4), n(5), n(6), n(7), n(8), R, n(10)},
		},
		{
			name:        "first page fills the right side",
			currentPage: 1, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5), n(6), n(7), R, n(10)},
		},
		{
			name:        "last page fills the left side",
			currentPage: 10, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), L, n(4), n(5), n(6), n(7), n(8), n(9), n(10)},
		},
		{
			name:        "left spill only with a single filler",
			currentPage: 7, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), L, n(4), n(5), n(6), n(7), n(8), n(9), n(10)},
		},
		{
			name:        "right spill only with a single filler",
			currentPage: 4, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5), n(6), n(7), R, n(10)},
		},
		{
			name:        "zero neighbours in the middle",
			currentPage: 10, totalPages: 20, neighbours: 0,
			want: []PageMarker{n(1), L, n(10), R, n(20)},
		},
		{
			name:        "zero neighbours on the last page",
			currentPage: 7, totalPages: 7, neighbours: 0,
			want: []PageMarker{n(1), L, n(5), n(6), n(7)},
		},
		{
			name:        "one neighbour on the first page",
			currentPage: 1, totalPages: 20, neighbours: 1,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5), R, n(20)},
		},
		{
			name:        "fits into blocks without jumps",
			currentPage: 3, totalPages: 5, neighbours: 0,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5)},
		},
		{
			name:        "exactly totalBlocks pages",
			currentPage: 5, totalPages: 9, neighbours: 2,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5), n(6), n(7), n(8), n(9)},
		},
		{
			name:        "single page",
			currentPage: 1, totalPages: 1, neighbours: 2,
			want: []PageMarker{n(1)},
		},
		{
			name:        "no pages",
			currentPage: 1, totalPages: 0, neighbours: 2,
			want: []PageMarker{},
		},
		{
			name:        "neighbours above the maximum are clamped",
			currentPage: 6, totalPages: 10, neighbours: 7,
			want: []PageMarker{n(1), L, n(4), n(5), n(6), n(7), n(8), R, n(10)},
		},
		{
			name:        "current page zero is laid out as the first page",
			currentPage: 0, totalPages: 10, neighbours: 2,
			want: []PageMarker{n(1), n(2), n(3), n(4), n(5), n(6), n(7), R, n(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePageMarkers(tt.currentPage, tt.totalPages, tt.neighbours)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_ComputePageMarkers_Properties(t *testing.T) {
	for neighbours := 0; neighbours <= MaxPageNeighbours; neighbours++ {
		totalBlocks := neighbours*2 + 5

		for totalPages := 1; totalPages <= 40; totalPages++ {
			for currentPage := 1; currentPage <= totalPages; currentPage++ {
				name := fmt.Sprintf("n=%d total=%d current=%d", neighbours, totalPages, currentPage)
				got := ComputePageMarkers(currentPage, totalPages, neighbours)

				require.NotEmpty(t, got, name)
				require.Equal(t, PageNumber(1), got[0], name)
				require.Equal(t, PageNumber(totalPages), got[len(got)-1], name)

				if totalPages <= totalBlocks {
					require.Len(t, got, totalPages, name)
					for i, m := range got {
						require.Equal(t, PageNumber(i+1), m, name)
					}
					continue
				}

				// Numbers are ascending; a gap between two numbers exists
				// exactly when a jump marker sits between them.
				var (
					prev      = 0
					jumpSeen  = false
					hasActive = false
				)
				for _, m := range got {
					if m.IsJump() {
						require.False(t, jumpSeen, "%s: consecutive jump markers", name)
						jumpSeen = true
						continue
					}

					require.GreaterOrEqual(t, m.Page, 1, name)
					require.LessOrEqual(t, m.Page, totalPages, name)
					if prev != 0 {
						if jumpSeen {
							require.Greater(t, m.Page-prev, 1, "%s: jump without hidden pages", name)
						} else {
							require.Equal(t, 1, m.Page-prev, "%s: hidden pages without jump", name)
						}
					}
					if m.Page == currentPage {
						hasActive = true
					}
					prev = m.Page
					jumpSeen = false
				}
				require.True(t, hasActive, "%s: current page is not visible", name)
			}
		}
	}
}
