package numpager

import "github.com/samber/lo"

const (
	// DefaultPageSize is used when the page size is missing or not positive.
	DefaultPageSize = 20
	// MaxPageSize caps page sizes that come from untrusted payloads.
	MaxPageSize = 100

	// MaxPageNeighbours is the widest neighbour radius the control supports.
	MaxPageNeighbours = 2
)

// IsNormalizedPageSizeMax normalizes size against maxSize and reports whether
// the value was kept as is.
func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

// NormalizePageSize replaces a non-positive size with DefaultPageSize. The
// size is not capped; use NormalizePageSizeMax for that.
func NormalizePageSize(size int) int {
	return lo.Ternary(size <= 0, DefaultPageSize, size)
}

// NormalizePageNeighbours clamps the neighbour radius into [0, MaxPageNeighbours].
func NormalizePageNeighbours(neighbours int) int {
	return lo.Clamp(neighbours, 0, MaxPageNeighbours)
}

// NormalizeTotalRecords replaces negative totals with zero.
func NormalizeTotalRecords(total int) int {
	return max(total, 0)
}

// TotalPages returns ceil(totalRecords / pageSize) for normalized inputs.
func TotalPages(totalRecords, pageSize int) int {
	totalRecords = NormalizeTotalRecords(totalRecords)
	pageSize = NormalizePageSize(pageSize)

	return (totalRecords + pageSize - 1) / pageSize
}

// jumpDistance is the number of numeric slots a single jump marker collapses.
func jumpDistance(neighbours int) int {
	return neighbours*2 + 1
}
