// Package listtable is a sortable, paginated list of rows. Callers describe
// the columns and how to read a sort value from a row; the table orders and
// slices rows for one request.
package listtable

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query parameter names.
const (
	ParamOrderBy = "orderby"
	ParamOrder   = "order"
	ParamPage    = "paged"
)

const defaultPerPage = 10

// Column describes one table column.
type Column struct {
	Key      string
	Label    string
	Sortable bool
}

// Query is the sort and page state requested by the caller.
type Query struct {
	OrderBy string
	Order   string
	Page    int
}

// QueryFromValues reads orderby, order and paged from request values.
func QueryFromValues(values url.Values) Query {
	page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage)))
	if err != nil {
		page = 1
	}

	return Query{
		OrderBy: strings.TrimSpace(values.Get(ParamOrderBy)),
		Order:   strings.TrimSpace(values.Get(ParamOrder)),
		Page:    page,
	}
}

// Page is one slice of the sorted rows plus the pagination metadata.
type Page[T any] struct {
	Items       []T
	TotalItems  int
	TotalPages  int
	PerPage     int
	CurrentPage int
	OrderBy     string
	Order       string
}

// HasPrev reports whether a previous page exists.
func (p *Page[T]) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Table sorts and paginates rows of type T.
type Table[T any] struct {
	Columns        []Column
	DefaultOrderBy string
	PerPage        int

	// SortValue returns the string compared for column key.
	SortValue func(row T, key string) string

	// ID breaks ties between equal sort values so the order is total.
	ID func(row T) int64
}

// IsSortable reports whether key names a sortable column.
func (t *Table[T]) IsSortable(key string) bool {
	for _, column := range t.Columns {
		if column.Key == key {
			return column.Sortable
		}
	}

	return false
}

// Normalize replaces unknown sort keys, directions and pages with defaults.
func (t *Table[T]) Normalize(q Query) Query {
	if !t.IsSortable(q.OrderBy) {
		q.OrderBy = t.DefaultOrderBy
	}

	switch strings.ToLower(q.Order) {
	case OrderDesc:
		q.Order = OrderDesc
	default:
		q.Order = OrderAsc
	}

	if q.Page < 1 {
		q.Page = 1
	}

	return q
}

// Sort returns a sorted copy of rows. The comparison is a byte-wise string
// comparison of the sort values; descending is the exact reverse of ascending.
func (t *Table[T]) Sort(rows []T, orderBy, order string) []T {
	sorted := slices.Clone(rows)

	sign := 1
	if order == OrderDesc {
		sign = -1
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		c := strings.Compare(t.SortValue(a, orderBy), t.SortValue(b, orderBy))
		if c == 0 && t.ID != nil {
			c = cmp.Compare(t.ID(a), t.ID(b))
		}

		return sign * c
	})

	return sorted
}

// Build sorts rows by the normalized query and cuts out the requested page.
// TotalItems counts all rows, not the returned slice.
func (t *Table[T]) Build(rows []T, q Query) *Page[T] {
	q = t.Normalize(q)
	perPage := t.perPage()

	total := len(rows)
	totalPages := TotalPages(total, perPage)

	return &Page[T]{
		Items:       Paginate(t.Sort(rows, q.OrderBy, q.Order), q.Page, perPage),
		TotalItems:  total,
		TotalPages:  totalPages,
		PerPage:     perPage,
		CurrentPage: ClampPage(q.Page, totalPages),
		OrderBy:     q.OrderBy,
		Order:       q.Order,
	}
}

func (t *Table[T]) perPage() int {
	if t.PerPage <= 0 {
		return defaultPerPage
	}

	return t.PerPage
}

// Paginate returns rows[(page-1)*perPage : page*perPage] clamped to the slice.
// Pages past the end are empty.
func Paginate[T any](rows []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	// Compare page counts before multiplying so a huge page cannot overflow.
	if page > TotalPages(len(rows), perPage) {
		return []T{}
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(rows))

	return rows[start:end]
}

// TotalPages is the number of pages needed for total rows.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return (total + perPage - 1) / perPage
}

// ClampPage bounds a requested page to [1, totalPages+1]. Any page past the
// end is reported as the first empty page after it.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}

	return min(page, totalPages+1)
}
