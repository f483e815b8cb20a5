package numpager

import (
	"fmt"

	"gorm.io/gorm"
)

// Paginate restricts the dataset to the current page: ordering (if any),
// OFFSET and LIMIT. Returns an error if the ordering is not valid.
func (p *NumberPager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot paginate: number pager is nil")
	}

	if err := p.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db)
	if offset := p.GetOffset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db.Limit(p.pageSize), nil
}

// CountRecords returns the number of records matched by db. The query is run
// on a new session so db stays reusable for Paginate.
func CountRecords(db *gorm.DB) (int, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	return int(total), nil
}

// NewFromQuery counts the records matched by db and creates a NumberPager over
// them. opts.TotalRecords is ignored.
func NewFromQuery(db *gorm.DB, opts Options) (*NumberPager, error) {
	total, err := CountRecords(db)
	if err != nil {
		return nil, err
	}

	opts.TotalRecords = total

	return New(opts), nil
}
