package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"interest/config"
	"interest/internal/delivery/admin"
	"interest/internal/delivery/api/validator"
	"interest/internal/domain/entity"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/listtable"
	mockusecase "interest/internal/mocks/usecase"
	"interest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const listQuery = "post_type=product&page=product-interest-list"

type adminHandlerFixture struct {
	handler *AdminHandler
	tableUC *mockusecase.MockTableUsecase
	bulkUC  *mockusecase.MockBulkActionUsecase
}

func createTestAdminHandler(t *testing.T) *adminHandlerFixture {
	t.Helper()

	cfg := &config.Config{
		Admin: &config.AdminConfig{
			BaseURL:  "https://shop.example.com/admin",
			SiteURL:  "https://shop.example.com",
			MenuSlug: "product-interest-list",
			PerPage:  10,
		},
	}
	page := admin.NewPage(cfg)

	f := &adminHandlerFixture{
		tableUC: mockusecase.NewMockTableUsecase(t),
		bulkUC:  mockusecase.NewMockBulkActionUsecase(t),
	}
	f.handler = NewAdminHandler(AdminHandlerParams{
		Page:     page,
		Renderer: admin.NewRowRenderer(page, cfg),
		TableUC:  f.tableUC,
		BulkUC:   f.bulkUC,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func newEchoContext(req *http.Request, roles ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(roles) > 0 {
		c.Set("userID", int64(1))
		c.Set("roles", roles)
	}

	return c, rec
}

func testRows() []*entity.Row {
	return []*entity.Row{
		{
			ID:          101,
			ProductID:   10,
			ProductName: "Walnut Desk",
			CustomerID:  1,
			DisplayName: "Alice",
			Email:       "alice@example.com",
			SignupDate:  time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func testListPage() *listtable.Page[*entity.Row] {
	return &listtable.Page[*entity.Row]{
		Items:       testRows(),
		TotalItems:  1,
		TotalPages:  1,
		PerPage:     10,
		CurrentPage: 1,
		OrderBy:     usecase.ColumnSignupDate,
		Order:       listtable.OrderAsc,
	}
}

func TestAdminHandler_ListSubscriptions(t *testing.T) {
	f := createTestAdminHandler(t)

	f.tableUC.EXPECT().
		ListPage(mock.Anything, listtable.Query{OrderBy: "product_name", Order: "desc", Page: 1}).
		Return(testListPage(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/products?"+listQuery+"&orderby=product_name&order=desc&paged=1", nil)
	c, rec := newEchoContext(req, "admin")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "<strong>Alice</strong>")
	assert.NotContains(t, rec.Body.String(), "notice")
}

func TestAdminHandler_ListSubscriptionsShowsNotice(t *testing.T) {
	f := createTestAdminHandler(t)

	f.tableUC.EXPECT().ListPage(mock.Anything, mock.Anything).Return(testListPage(), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/products?"+listQuery+"&wc-product-interest-response=1&success=1&action=unsubscribed&count=2", nil)
	c, rec := newEchoContext(req, "admin")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2 subscriptions removed.")
}

func TestAdminHandler_ListSubscriptionsWithoutPageRedirects(t *testing.T) {
	f := createTestAdminHandler(t)

	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/products", nil), "admin")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://shop.example.com/admin/products?"+"page=product-interest-list&post_type=product", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminHandler_ListSubscriptionsWithoutAdminIsForbidden(t *testing.T) {
	f := createTestAdminHandler(t)

	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/products", nil), "shop_manager")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminHandler_ListSubscriptionsOtherPageNotFound(t *testing.T) {
	f := createTestAdminHandler(t)

	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/products?post_type=product&page=reports", nil), "admin")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_ListSubscriptionsStorageError(t *testing.T) {
	f := createTestAdminHandler(t)

	f.tableUC.EXPECT().ListPage(mock.Anything, mock.Anything).Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to find enabled products"))

	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/products?"+listQuery, nil), "admin")

	require.NoError(t, f.handler.ListSubscriptions(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_EXECUTE_FAILED")
}

func newBulkRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/products?"+listQuery, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func TestAdminHandler_ProcessBulkActionRedirects(t *testing.T) {
	f := createTestAdminHandler(t)

	form := url.Values{
		"action":                             {"wc_product_subs_unsubscribe"},
		"wc_product_subs_relationship_ids[]": {"101", "102"},
		"wc_product_subs_customer_ids[]":     {"1", "2"},
		"wc_product_subs_product_ids[]":      {"<b>10</b>", "20"},
	}

	f.bulkUC.EXPECT().
		Process(mock.Anything, mock.MatchedBy(func(req *usecase.BulkRequest) bool {
			return req.Action == "wc_product_subs_unsubscribe" &&
				req.PageHook == "product_page_product-interest-list" &&
				!req.NonceValid &&
				assert.ObjectsAreEqual([]string{"101", "102"}, req.RelationshipIDs) &&
				assert.ObjectsAreEqual([]string{"1", "2"}, req.CustomerIDs) &&
				assert.ObjectsAreEqual([]string{"10", "20"}, req.ProductIDs)
		})).
		Return(&usecase.BulkOutcome{Status: usecase.BulkSuccess, Count: 2}, nil)

	c, rec := newEchoContext(newBulkRequest(form), "admin")

	require.NoError(t, f.handler.ProcessBulkAction(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "1", location.Query().Get("success"))
	assert.Equal(t, "unsubscribed", location.Query().Get("action"))
	assert.Equal(t, "2", location.Query().Get("count"))
	assert.Equal(t, "1", location.Query().Get("wc-product-interest-response"))
}

func TestAdminHandler_ProcessBulkActionUsesBottomDropdown(t *testing.T) {
	f := createTestAdminHandler(t)

	form := url.Values{
		"action":  {"-1"},
		"action2": {"wc_product_subs_unsubscribe"},
	}

	f.bulkUC.EXPECT().
		Process(mock.Anything, mock.MatchedBy(func(req *usecase.BulkRequest) bool {
			return req.Action == "wc_product_subs_unsubscribe" && len(req.RelationshipIDs) == 0
		})).
		Return(&usecase.BulkOutcome{Status: usecase.BulkNoIDs}, nil)

	c, rec := newEchoContext(newBulkRequest(form), "admin")

	require.NoError(t, f.handler.ProcessBulkAction(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "errcode=no_ids")
}

func TestAdminHandler_ProcessBulkActionIdleRendersList(t *testing.T) {
	f := createTestAdminHandler(t)

	f.bulkUC.EXPECT().Process(mock.Anything, mock.Anything).Return(&usecase.BulkOutcome{Status: usecase.BulkIdle}, nil)
	f.tableUC.EXPECT().ListPage(mock.Anything, mock.Anything).Return(testListPage(), nil)

	c, rec := newEchoContext(newBulkRequest(url.Values{"action": {"-1"}}), "admin")

	require.NoError(t, f.handler.ProcessBulkAction(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>Alice</strong>")
}

func TestAdminHandler_ExportSubscriptions(t *testing.T) {
	f := createTestAdminHandler(t)

	f.tableUC.EXPECT().
		SortedRows(mock.Anything, listtable.Query{OrderBy: "visible_name", Page: 1}).
		Return(testRows(), nil)

	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/admin/products/export.csv?orderby=visible_name", nil), "admin")

	require.NoError(t, f.handler.ExportSubscriptions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-16le", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "product-subscriptions.csv")

	body := rec.Body.Bytes()
	require.GreaterOrEqual(t, len(body), 2)
	assert.Equal(t, []byte{0xFF, 0xFE}, body[:2])
}

func TestBulkAction(t *testing.T) {
	assert.Equal(t, "a", bulkAction(url.Values{"action": {"a"}, "action2": {"b"}}))
	assert.Equal(t, "b", bulkAction(url.Values{"action": {"-1"}, "action2": {"b"}}))
	assert.Equal(t, "b", bulkAction(url.Values{"action2": {"b"}}))
	assert.Empty(t, bulkAction(url.Values{}))
}
