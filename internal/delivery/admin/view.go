package admin

import (
	"embed"
	"html/template"
	"io"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/listtable"
	"interest/internal/usecase"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var listTemplate = template.Must(
	template.New("list.html").Funcs(template.FuncMap{"dict": dict}).ParseFS(templateFS, "templates/list.html"),
)

const pageTitle = "Product Subscriptions"

// HeaderCell is one column header of the list.
type HeaderCell struct {
	Key      string
	Label    string
	Checkbox bool
	Sortable bool
	Sorted   bool
	Order    string
	URL      string
}

// BulkOption is one entry of the bulk action dropdowns.
type BulkOption struct {
	Value string
	Label string
}

// Pagination is the page navigation below the list.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PrevURL     string
	NextURL     string
}

// ListView is everything the list template renders.
type ListView struct {
	Title       string
	Notice      *Notice
	FormAction  string
	NonceField  template.HTML
	BulkActions []BulkOption
	Headers     []HeaderCell
	Rows        [][]template.HTML
	ColumnCount int
	Pagination  Pagination
	ExportURL   string
}

// NewListView lays out one page of rows with its headers and navigation.
func NewListView(
	page *Page,
	renderer *RowRenderer,
	columns []listtable.Column,
	result *listtable.Page[*entity.Row],
	notice *Notice,
	nonceField template.HTML,
) *ListView {
	current := listtable.Query{OrderBy: result.OrderBy, Order: result.Order, Page: result.CurrentPage}

	view := &ListView{
		Title:       pageTitle,
		Notice:      notice,
		FormAction:  page.ListURL(current),
		NonceField:  nonceField,
		BulkActions: []BulkOption{{Value: constants.BulkActionUnsubscribe, Label: "Unsubscribe"}},
		Headers:     make([]HeaderCell, 0, len(columns)),
		Rows:        make([][]template.HTML, 0, len(result.Items)),
		ColumnCount: len(columns),
		ExportURL:   page.ExportURL(current),
		Pagination: Pagination{
			CurrentPage: result.CurrentPage,
			TotalPages:  max(result.TotalPages, 1),
			TotalItems:  result.TotalItems,
		},
	}

	for _, column := range columns {
		header := HeaderCell{
			Key:      column.Key,
			Label:    column.Label,
			Checkbox: column.Key == usecase.ColumnCheckbox,
			Sortable: column.Sortable,
		}
		if column.Sortable {
			header.Sorted = column.Key == result.OrderBy
			header.Order = result.Order

			next := listtable.OrderAsc
			if header.Sorted && result.Order == listtable.OrderAsc {
				next = listtable.OrderDesc
			}
			header.URL = page.ListURL(listtable.Query{OrderBy: column.Key, Order: next})
		}
		view.Headers = append(view.Headers, header)
	}

	for _, row := range result.Items {
		view.Rows = append(view.Rows, renderer.RenderRow(row, columns))
	}

	if result.HasPrev() {
		prev := current
		prev.Page = result.CurrentPage - 1
		view.Pagination.PrevURL = page.ListURL(prev)
	}
	if result.HasNext() {
		next := current
		next.Page = result.CurrentPage + 1
		view.Pagination.NextURL = page.ListURL(next)
	}

	return view
}

// Render writes the page.
func (v *ListView) Render(w io.Writer) error {
	return errors.WithStack(listTemplate.Execute(w, v))
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key value pairs")
	}

	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.Errorf("dict key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}

	return out, nil
}
