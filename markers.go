package numpager

import "github.com/samber/lo"

// ComputePageMarkers returns the ordered slots of the pagination control.
//
// Let's say there are 10 pages, pageNeighbours is 2 and the current page is 6.
// The control looks like:
//
//	(1) < {4 5} [6] {7 8} > (10)
//
// (x) are terminal pages which are always visible, [x] is the current page,
// {x} are its neighbours and < > are jump markers.
//
// pageNeighbours is clamped into [0, MaxPageNeighbours] and currentPage into
// [1, totalPages]. A non-positive totalPages yields an empty result.
func ComputePageMarkers(currentPage, totalPages, pageNeighbours int) []PageMarker {
	if totalPages <= 0 {
		return []PageMarker{}
	}

	pageNeighbours = NormalizePageNeighbours(pageNeighbours)
	currentPage = lo.Clamp(currentPage, 1, totalPages)

	// totalNumbers: page numbers shown on the control, terminal pages included.
	// totalBlocks: totalNumbers plus the two jump markers.
	totalNumbers := pageNeighbours*2 + 3
	totalBlocks := totalNumbers + 2

	if totalPages <= totalBlocks {
		return pageNumbers(1, totalPages)
	}

	startPage := max(2, currentPage-pageNeighbours)
	endPage := min(totalPages-1, currentPage+pageNeighbours)

	pages := pageNumbers(startPage, endPage)

	hasLeftSpill := startPage > 2
	hasRightSpill := totalPages-endPage > 1
	spillOffset := totalNumbers - (len(pages) + 1)

	switch {
	// (1) < {5 6} [7] {8 9} (10)
	case hasLeftSpill && !hasRightSpill:
		extra := pageNumbers(startPage-spillOffset, startPage-1)
		pages = append(append([]PageMarker{JumpLeft}, extra...), pages...)

	// (1) {2 3} [4] {5 6} > (10)
	case !hasLeftSpill && hasRightSpill:
		extra := pageNumbers(endPage+1, endPage+spillOffset)
		pages = append(append(pages, extra...), JumpRight)

	// (1) < {4 5} [6] {7 8} > (10)
	default:
		pages = append(append([]PageMarker{JumpLeft}, pages...), JumpRight)
	}

	ret := make([]PageMarker, 0, len(pages)+2)
	ret = append(ret, PageNumber(1))
	ret = append(ret, pages...)
	ret = append(ret, PageNumber(totalPages))

	return ret
}

// pageNumbers returns number markers for [from..to]; empty when from > to.
func pageNumbers(from, to int) []PageMarker {
	if from > to {
		return []PageMarker{}
	}

	return lo.Map(lo.RangeFrom(from, to-from+1), func(page int, _ int) PageMarker {
		return PageNumber(page)
	})
}
