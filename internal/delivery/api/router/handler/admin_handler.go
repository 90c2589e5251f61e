package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"interest/config"
	"interest/internal/delivery/admin"
	"interest/internal/delivery/api/middleware"
	"interest/internal/delivery/api/response"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/constants"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/infra/export"
	"interest/internal/listtable"
	"interest/internal/usecase"
	"interest/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	bulkActionNone = "-1"
	exportFilename = "product-subscriptions.csv"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Page     *admin.Page
	Renderer *admin.RowRenderer
	TableUC  usecase.TableUsecase
	BulkUC   usecase.BulkActionUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// AdminHandler serves the subscription list page, its bulk action and the CSV export
type AdminHandler struct {
	page     *admin.Page
	renderer *admin.RowRenderer
	tableUC  usecase.TableUsecase
	bulkUC   usecase.BulkActionUsecase
	columns  []listtable.Column
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	perPage := 0
	if params.Config != nil && params.Config.Admin != nil {
		perPage = params.Config.Admin.PerPage
	}

	return &AdminHandler{
		page:     params.Page,
		renderer: params.Renderer,
		tableUC:  params.TableUC,
		bulkUC:   params.BulkUC,
		columns:  usecase.NewRowTable(perPage).Columns,
		logger:   params.Logger,
	}
}

func (h *AdminHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// ListSubscriptions renders the subscription list
func (h *AdminHandler) ListSubscriptions(c echo.Context) error {
	query := sanitizedQuery(c)

	hook := admin.HookFromQuery(query)
	if hook == "" {
		settingsURL, ok := h.page.SettingsURL(middleware.IsAdmin(c))
		if !ok {
			return response.Fail(c, domainerrors.ErrForbidden)
		}

		return c.Redirect(http.StatusSeeOther, settingsURL)
	}
	if !h.page.IsSettingsPage(hook) {
		return response.Fail(c, domainerrors.ErrNotFound)
	}

	return h.renderList(c, query, admin.NoticeFromQuery(query))
}

// ProcessBulkAction handles a submission of the list form. Every terminal outcome
// redirects back to the list; anything else renders the list as a GET would.
func (h *AdminHandler) ProcessBulkAction(c echo.Context) error {
	if _, err := c.FormParams(); err != nil {
		return response.Fail(c, domainerrors.ErrValidationFailed)
	}

	query := sanitizedQuery(c)
	form := url.Values(util.SanitizeValues(c.Request().PostForm, false))

	req := &usecase.BulkRequest{
		Action:          bulkAction(form),
		PageHook:        admin.HookFromQuery(query),
		NonceValid:      admin.NonceValid(c.Request()),
		RelationshipIDs: form[constants.FieldRelationshipIDs],
		CustomerIDs:     form[constants.FieldCustomerIDs],
		ProductIDs:      form[constants.FieldProductIDs],
	}

	outcome, err := h.bulkUC.Process(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if outcome.Redirect() {
		if len(outcome.Failed) > 0 {
			h.log(c.Request().Context()).Warn("Bulk unsubscribe finished with failures",
				slog.Int("deleted", outcome.Count),
				slog.Any("failed", outcome.Failed),
			)
		}

		return h.page.RedirectWithStatus(c, outcome.RedirectArgs(), true)
	}

	if !h.page.IsSettingsPage(req.PageHook) {
		return response.Fail(c, domainerrors.ErrNotFound)
	}

	return h.renderList(c, query, nil)
}

// ExportSubscriptions streams every row of the list as CSV in the requested order
func (h *AdminHandler) ExportSubscriptions(c echo.Context) error {
	rows, err := h.tableUC.SortedRows(c.Request().Context(), listtable.QueryFromValues(sanitizedQuery(c)))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteRows(&buf, rows); err != nil {
		return errors.Wrap(err, "failed to write export")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFilename))

	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *AdminHandler) renderList(c echo.Context, query url.Values, notice *admin.Notice) error {
	result, err := h.tableUC.ListPage(c.Request().Context(), listtable.QueryFromValues(query))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := admin.NewListView(h.page, h.renderer, h.columns, result, notice, admin.NonceField(c.Request()))

	var buf bytes.Buffer
	if err := view.Render(&buf); err != nil {
		return errors.Wrap(err, "failed to render subscription list")
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// bulkAction picks the top dropdown unless it is unset, then the bottom one.
func bulkAction(form url.Values) string {
	action := form.Get("action")
	if action == "" || action == bulkActionNone {
		action = form.Get("action2")
	}

	return action
}

func sanitizedQuery(c echo.Context) url.Values {
	return url.Values(util.SanitizeValues(c.QueryParams(), false))
}
