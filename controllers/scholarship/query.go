package scholarshipController

import (
	"strings"

	"gorm.io/gorm"
)

// Sort keys accepted by the scholarship listing. Anything else leaves the
// natural table order.
const (
	SortFeeAsc  = "feeAsc"
	SortFeeDesc = "feeDesc"
	SortNewest  = "newest"
)

// ListQuery carries the caller-supplied search/filter/sort/page parameters
// for the scholarship listing.
type ListQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

// Filter applies the search and category conditions. Search is an OR of
// case-insensitive substring matches over name, university and degree;
// LOWER+LIKE is used instead of ILIKE so it runs on sqlite too.
func (q *ListQuery) Filter(db *gorm.DB) *gorm.DB {
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where(
			"LOWER(scholarship_name) LIKE ? OR LOWER(university_name) LIKE ? OR LOWER(degree) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if q.Category != "" {
		db = db.Where("scholarship_category = ?", q.Category)
	}
	return db
}

// Order applies the sort key
func (q *ListQuery) Order(db *gorm.DB) *gorm.DB {
	switch q.Sort {
	case SortFeeAsc:
		return db.Order("application_fee ASC")
	case SortFeeDesc:
		return db.Order("application_fee DESC")
	case SortNewest:
		return db.Order("post_date DESC")
	}
	return db
}

// Offset converts the 1-based page to a row offset
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
