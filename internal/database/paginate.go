package database

import "gorm.io/gorm"

// Pagination describes one page of a result set.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	PrevPage   int   `json:"prev_page"`
	NextPage   int   `json:"next_page"`
}

// NewPagination computes page metadata. page below 1 is treated as 1.
// A page past the end keeps its number and reports the real totals.
func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	p := Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}

// Offset is the number of rows before this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Paginate counts rows matched by q and loads the requested page into out, ordered by order.
// preloads are applied to the page query only.
func Paginate[T any](q *gorm.DB, order string, page, perPage int, out *[]T, preloads ...string) (Pagination, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	p := NewPagination(page, perPage, total)
	*out = []T{}
	// Page is bounded by TotalPages before Offset multiplies it.
	if p.Page > p.TotalPages {
		return p, nil
	}
	find := q.Order(order).Offset(p.Offset()).Limit(p.PerPage)
	for _, rel := range preloads {
		find = find.Preload(rel)
	}
	if err := find.Find(out).Error; err != nil {
		return Pagination{}, err
	}
	return p, nil
}
