package usecase

import (
	"context"
	"strings"

	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/listtable"
)

// Subscription list columns
const (
	ColumnCheckbox    = "cb"
	ColumnVisibleName = "visible_name"
	ColumnProductName = "product_name"
	ColumnSignupDate  = "signup_date"
)

// signupSortLayout makes lexical order match chronological order
const signupSortLayout = "2006-01-02 15:04:05"

// NewRowTable describes the subscription list: its columns, default sort and page size
func NewRowTable(perPage int) *listtable.Table[*entity.Row] {
	return &listtable.Table[*entity.Row]{
		Columns: []listtable.Column{
			{Key: ColumnCheckbox, Label: "Select"},
			{Key: ColumnVisibleName, Label: "Name", Sortable: true},
			{Key: ColumnProductName, Label: "Product", Sortable: true},
			{Key: ColumnSignupDate, Label: "Signup Date", Sortable: true},
		},
		DefaultOrderBy: ColumnSignupDate,
		PerPage:        perPage,
		SortValue:      RowSortValue,
		ID:             func(row *entity.Row) int64 { return row.ID },
	}
}

// RowSortValue returns the string a row is ordered by for column key
func RowSortValue(row *entity.Row, key string) string {
	switch key {
	case ColumnVisibleName:
		return row.DisplayName
	case ColumnProductName:
		return row.ProductName
	case ColumnSignupDate:
		return row.SignupDate.UTC().Format(signupSortLayout)
	default:
		return ""
	}
}

// SettingsPageHook is the page identifier of the subscription list
func SettingsPageHook(menuSlug string) string {
	return constants.AdminPageHookPrefix + strings.TrimSpace(menuSlug)
}

// TableUsecase assembles the subscription list
type TableUsecase interface {
	// TableData flattens every enabled product's subscribers into rows, unsorted
	TableData(ctx context.Context) ([]*entity.Row, error)

	// ListPage returns the requested page of the sorted rows
	ListPage(ctx context.Context, query listtable.Query) (*listtable.Page[*entity.Row], error)

	// SortedRows returns every row in the requested order
	SortedRows(ctx context.Context, query listtable.Query) ([]*entity.Row, error)
}

// TableHooks are the extension points of the list. Both run after the rows are assembled.
type TableHooks struct {
	// Row transforms each assembled row
	Row listtable.Filter[*entity.Row]

	// List transforms the complete row list
	List listtable.Filter[[]*entity.Row]
}

// NewTableHooks returns hooks with nothing registered
func NewTableHooks() *TableHooks {
	return &TableHooks{}
}
