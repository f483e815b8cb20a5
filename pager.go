package numpager

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Options configures a NumberPager. Zero values select the defaults.
type Options struct {
	// TotalRecords - number of records in the paged dataset. Negative values
	// are treated as 0.
	TotalRecords int
	// PageSize - records per page. Non-positive values select DefaultPageSize.
	PageSize int
	// PageNeighbours - page links shown on each side of the current page,
	// clamped into [0, MaxPageNeighbours].
	PageNeighbours int
	// OnPageChange is called after every navigation. May be nil.
	OnPageChange func(Summary)
}

// Summary is the snapshot handed to OnPageChange.
type Summary struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

// NumberPager holds the state of a numbered pagination control: the current
// page and the page count derived from the record total and the page size.
//
// A NumberPager is meant to serve a single request or session and is not
// safe for concurrent use.
type NumberPager struct {
	totalRecords   int
	pageSize       int
	pageNeighbours int

	currentPage int
	totalPages  int

	onPageChange func(Summary)
	logger       *zap.Logger
	sort         Orderings
}

func noopPageChange(Summary) {}

// New creates a NumberPager positioned at page 1.
func New(opts Options) *NumberPager {
	p := &NumberPager{
		totalRecords:   NormalizeTotalRecords(opts.TotalRecords),
		pageSize:       NormalizePageSize(opts.PageSize),
		pageNeighbours: NormalizePageNeighbours(opts.PageNeighbours),
		currentPage:    1,
		onPageChange:   lo.Ternary(opts.OnPageChange != nil, opts.OnPageChange, noopPageChange),
		logger:         zap.NewNop(),
	}
	p.totalPages = TotalPages(p.totalRecords, p.pageSize)

	return p
}

// WithOnPageChange replaces the navigation callback. nil installs a no-op.
func (p *NumberPager) WithOnPageChange(fn func(Summary)) *NumberPager {
	if p == nil {
		p = New(Options{})
	}

	p.onPageChange = lo.Ternary(fn != nil, fn, noopPageChange)

	return p
}

// WithLogger sets the logger used for navigation events. nil disables logging.
func (p *NumberPager) WithLogger(logger *zap.Logger) *NumberPager {
	if p == nil {
		p = New(Options{})
	}

	p.logger = lo.Ternary(logger != nil, logger, zap.NewNop())

	return p
}

// WithCurrentPage restores a page, e.g. one decoded from a request. The page
// is clamped into [1, TotalPages] and OnPageChange is not called.
func (p *NumberPager) WithCurrentPage(page int) *NumberPager {
	if p == nil {
		p = New(Options{})
	}

	p.currentPage = lo.Clamp(page, 1, max(p.totalPages, 1))

	return p
}

// WithSubstitutedSort drops previous orderings and applies the provided ones.
func (p *NumberPager) WithSubstitutedSort(orderBy ...OrderBy) *NumberPager {
	if p == nil {
		p = New(Options{})
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends orderings used by Paginate. A column that is already
// sorted on moves to the end with its new direction.
func (p *NumberPager) WithSort(orderBy ...OrderBy) *NumberPager {
	if p == nil {
		p = New(Options{})
	}

	for _, o := range orderBy {
		p.sort = slices.DeleteFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})
		p.sort = append(p.sort, o)
	}

	return p
}

// GotoPage moves to page and notifies OnPageChange with the new state.
//
// The target is clamped into [0, TotalPages]. Note the lower bound: a jump
// past the first page lands on 0, not on 1.
func (p *NumberPager) GotoPage(page int) {
	if p == nil {
		return
	}

	p.currentPage = lo.Clamp(page, 0, p.totalPages)

	summary := p.Summary()
	p.logger.Debug("page changed",
		zap.Int("requestedPage", page),
		zap.Int("currentPage", summary.CurrentPage),
		zap.Int("totalPages", summary.TotalPages),
	)

	p.onPageChange(summary)
}

// MoveLeft jumps back over the block collapsed by a jump marker.
func (p *NumberPager) MoveLeft() {
	if p == nil {
		return
	}

	p.GotoPage(p.currentPage - jumpDistance(p.pageNeighbours))
}

// MoveRight jumps forward over the block collapsed by a jump marker.
func (p *NumberPager) MoveRight() {
	if p == nil {
		return
	}

	p.GotoPage(p.currentPage + jumpDistance(p.pageNeighbours))
}

// Activate handles a click on a rendered marker.
func (p *NumberPager) Activate(marker PageMarker) {
	switch marker.Kind {
	case MarkerNumber:
		p.GotoPage(marker.Page)
	case MarkerJumpLeft:
		p.MoveLeft()
	case MarkerJumpRight:
		p.MoveRight()
	default:
		panic(fmt.Errorf("cannot activate page marker of unknown kind %d", marker.Kind))
	}
}

// JumpTarget returns the page Activate(marker) would move to, without
// changing any state.
func (p *NumberPager) JumpTarget(marker PageMarker) int {
	if p == nil {
		return 0
	}

	var target int
	switch marker.Kind {
	case MarkerNumber:
		target = marker.Page
	case MarkerJumpLeft:
		target = p.currentPage - jumpDistance(p.pageNeighbours)
	case MarkerJumpRight:
		target = p.currentPage + jumpDistance(p.pageNeighbours)
	default:
		panic(fmt.Errorf("cannot resolve page marker of unknown kind %d", marker.Kind))
	}

	return lo.Clamp(target, 0, p.totalPages)
}

// SetPageSize changes the page size and recomputes TotalPages from the stored
// record total. The current page is left as is, even when it ends up past the
// last page, and OnPageChange is not called.
func (p *NumberPager) SetPageSize(size int) {
	if p == nil {
		return
	}

	p.pageSize = NormalizePageSize(size)
	p.totalPages = TotalPages(p.totalRecords, p.pageSize)

	p.logger.Debug("page size changed",
		zap.Int("pageSize", p.pageSize),
		zap.Int("totalPages", p.totalPages),
		zap.Int("currentPage", p.currentPage),
	)
}

// Markers returns the slots of the control for the current state.
func (p *NumberPager) Markers() []PageMarker {
	if p == nil {
		return []PageMarker{}
	}

	return ComputePageMarkers(p.currentPage, p.totalPages, p.pageNeighbours)
}

// IsVisible reports whether the control should be rendered at all. There is
// nothing to show with no records or a single page.
func (p *NumberPager) IsVisible() bool {
	return p.GetTotalRecords() > 0 && p.GetTotalPages() > 1
}

// IsCurrent reports whether marker is the page the pager stands on.
func (p *NumberPager) IsCurrent(marker PageMarker) bool {
	return marker.IsNumber() && marker.Page == p.GetCurrentPage()
}

func (p *NumberPager) Summary() Summary {
	if p == nil {
		return Summary{}
	}

	return Summary{
		CurrentPage:  p.currentPage,
		TotalPages:   p.totalPages,
		PageSize:     p.pageSize,
		TotalRecords: p.totalRecords,
	}
}

func (p *NumberPager) GetCurrentPage() int {
	if p == nil {
		return 0
	}

	return p.currentPage
}

func (p *NumberPager) GetTotalPages() int {
	if p == nil {
		return 0
	}

	return p.totalPages
}

func (p *NumberPager) GetPageSize() int {
	if p == nil {
		return DefaultPageSize
	}

	return p.pageSize
}

func (p *NumberPager) GetTotalRecords() int {
	if p == nil {
		return 0
	}

	return p.totalRecords
}

func (p *NumberPager) GetPageNeighbours() int {
	if p == nil {
		return 0
	}

	return p.pageNeighbours
}

// GetSort returns orderings that Paginate applies.
func (p *NumberPager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// GetOffset returns the number of records before the current page. Page 0 is
// treated as the first page.
func (p *NumberPager) GetOffset() int {
	if p == nil {
		return 0
	}

	return (max(p.currentPage, 1) - 1) * p.pageSize
}
