// Package pagination parses 1-based page/limit query parameters and computes
// page counts.
package pagination

import (
	"strconv"

	"jobboard_backend/internal/shared/apperror"
)

// MaxLimit caps page size.
const MaxLimit = 100

// All is the filter sentinel meaning "do not filter".
const All = "ALL"

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse validates raw page and limit strings. Empty values fall back to page
// 1 and defaultLimit.
func Parse(rawPage, rawLimit string, defaultLimit int) (Params, error) {
	p := Params{Page: 1, Limit: defaultLimit}
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 {
			return Params{}, apperror.Validation("page must be a positive integer")
		}
		p.Page = n
	}
	if rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n < 1 {
			return Params{}, apperror.Validation("limit must be a positive integer")
		}
		if n > MaxLimit {
			n = MaxLimit
		}
		p.Limit = n
	}
	return p, nil
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Filter returns "" for the ALL sentinel or an empty value, else v.
func Filter(v string) string {
	if v == All {
		return ""
	}
	return v
}
