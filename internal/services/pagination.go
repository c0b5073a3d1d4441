package services

// Pagination describes one page of an ordered result set. Pages are
// 1-based; requests outside the valid range clamp to the nearest valid
// page instead of failing, so stale links and crawlers never see errors.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(requestedPage, perPage int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pagination) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}
