package model

// CohortPageSize is the page size used when a roll-up needs the entire
// matching set rather than a display window. Kept distinct from display
// pagination so totals never silently reflect only the visible page.
const CohortPageSize = 100000

const defaultPageSize = 10

// PageRequest is a 1-indexed pagination window.
type PageRequest struct {
	Page     int
	PageSize int
}

// Clamp normalizes out-of-range values instead of rejecting them:
// page below 1 becomes 1, page_size below 1 becomes the default,
// page_size above CohortPageSize becomes CohortPageSize.
func (p PageRequest) Clamp() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > CohortPageSize {
		p.PageSize = CohortPageSize
	}
	return p
}

// CohortPage is the window used for full-set aggregation queries.
func CohortPage() PageRequest {
	return PageRequest{Page: 1, PageSize: CohortPageSize}
}

// Offset returns the row offset for the window.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
