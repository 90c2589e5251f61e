package admin

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"interest/internal/domain/entity"
	"interest/internal/listtable"
	"interest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResult(rows ...*entity.Row) *listtable.Page[*entity.Row] {
	return &listtable.Page[*entity.Row]{
		Items:       rows,
		TotalItems:  12,
		TotalPages:  2,
		PerPage:     10,
		CurrentPage: 2,
		OrderBy:     usecase.ColumnProductName,
		Order:       listtable.OrderAsc,
	}
}

func headerByKey(t *testing.T, view *ListView, key string) HeaderCell {
	t.Helper()

	for _, header := range view.Headers {
		if header.Key == key {
			return header
		}
	}
	require.Failf(t, "header not found", "key %s", key)

	return HeaderCell{}
}

func TestNewListView_Headers(t *testing.T) {
	columns := usecase.NewRowTable(10).Columns
	view := NewListView(newTestPage(), newTestRenderer(1), columns, newTestResult(newTestRow()), nil, "")

	require.Len(t, view.Headers, len(columns))
	assert.True(t, headerByKey(t, view, usecase.ColumnCheckbox).Checkbox)

	sorted := headerByKey(t, view, usecase.ColumnProductName)
	assert.True(t, sorted.Sorted)
	assert.Contains(t, sorted.URL, "order=desc")
	assert.Contains(t, sorted.URL, "orderby=product_name")

	other := headerByKey(t, view, usecase.ColumnVisibleName)
	assert.False(t, other.Sorted)
	assert.Contains(t, other.URL, "order=asc")
}

func TestNewListView_Pagination(t *testing.T) {
	view := NewListView(newTestPage(), newTestRenderer(1), usecase.NewRowTable(10).Columns, newTestResult(newTestRow()), nil, "")

	assert.Equal(t, 2, view.Pagination.CurrentPage)
	assert.Equal(t, 2, view.Pagination.TotalPages)
	assert.Equal(t, 12, view.Pagination.TotalItems)
	assert.NotEmpty(t, view.Pagination.PrevURL)
	assert.NotContains(t, view.Pagination.PrevURL, "paged=")
	assert.Empty(t, view.Pagination.NextURL)
	assert.Contains(t, view.FormAction, "paged=2")
}

func TestListView_Render(t *testing.T) {
	nonce := template.HTML(`<input type="hidden" name="wc_product_subs_nonce_name" value="token">`)
	notice := &Notice{Success: true, Message: "2 subscriptions removed."}

	view := NewListView(newTestPage(), newTestRenderer(1), usecase.NewRowTable(10).Columns, newTestResult(newTestRow()), notice, nonce)

	var buf bytes.Buffer
	require.NoError(t, view.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "<title>Product Subscriptions</title>")
	assert.Contains(t, out, string(nonce))
	assert.Contains(t, out, `notice-success`)
	assert.Contains(t, out, "2 subscriptions removed.")
	assert.Contains(t, out, `<select name="action">`)
	assert.Contains(t, out, `<select name="action2">`)
	assert.Equal(t, 2, strings.Count(out, `<option value="wc_product_subs_unsubscribe">Unsubscribe</option>`))
	assert.Contains(t, out, "12 items")
	assert.Contains(t, out, "<strong>Bob</strong>")
	assert.Contains(t, out, `class="prev-page"`)
	assert.NotContains(t, out, `class="next-page"`)
}

func TestListView_RenderEmpty(t *testing.T) {
	result := &listtable.Page[*entity.Row]{Items: []*entity.Row{}, CurrentPage: 1, PerPage: 10, OrderBy: usecase.ColumnSignupDate, Order: listtable.OrderAsc}

	view := NewListView(newTestPage(), newTestRenderer(1), usecase.NewRowTable(10).Columns, result, &Notice{Message: "No subscriptions were selected."}, "")

	var buf bytes.Buffer
	require.NoError(t, view.Render(&buf))
	out := buf.String()

	assert.Equal(t, 1, view.Pagination.TotalPages)
	assert.Contains(t, out, "No subscriptions found.")
	assert.Contains(t, out, `colspan="4"`)
	assert.Contains(t, out, "notice-error")
	assert.Contains(t, out, "0 items")
}
