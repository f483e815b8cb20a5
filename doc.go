// Package numpager provides a numbered pagination control: page-number
// layout, navigation state, HTML rendering and gorm integration.
//
// Overview
//
// The control shows the first and last pages, the current page with up to
// two neighbours on each side, and jump markers over collapsed runs:
//
//	(1) < {4 5} [6] {7 8} > (10)
//
// Key concepts
//   - ComputePageMarkers: pure layout of the control as a []PageMarker.
//   - NumberPager: owns the current page, derives the page count, clamps
//     navigation and reports every change through Options.OnPageChange.
//   - Renderer: html/template rendering of the control for server-side pages.
//   - RawNumberPager: lenient request payload decoding.
//   - Paginate / NewFromQuery: OFFSET/LIMIT paging and record counting for GORM.
package numpager
