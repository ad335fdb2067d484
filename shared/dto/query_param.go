package dto

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gomoto/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

var sortColumn = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Malformed
// values are ignored. With withDefaults the page and limit fall back to the defaults and
// the limit is capped at constant.MaxValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	q.Page = positive(values.Get(constant.RequestParamPage), q.Page)
	q.Limit = positive(values.Get(constant.RequestParamLimit), q.Limit)

	if sortBy := strings.ToLower(values.Get(constant.RequestParamSortBy)); sortColumn.MatchString(sortBy) {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	q.Limit = min(q.Limit, constant.MaxValueLimit)
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positive(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
