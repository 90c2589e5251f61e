// Package admin renders the product interest list page: its URLs, redirects,
// notices, anti-forgery token and row markup.
package admin

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"interest/config"
	"interest/internal/domain/constants"
	"interest/internal/listtable"
	"interest/internal/usecase"
	"interest/internal/util"

	"github.com/labstack/echo/v4"
)

// Admin routes below the admin root.
const (
	MountPath    = "/admin"
	ProductsPath = "/products"
	ExportPath   = "/products/export.csv"

	customersPath = "/customers"
	ordersPath    = "/orders"
)

// Redirect payload keys.
const (
	ParamSuccess = "success"
	ParamErrCode = "errcode"
	ParamAction  = "action"
	ParamCount   = "count"
	paramPage    = "page"
	paramType    = "post_type"
)

// Page locates the list page and the admin screens it links to.
type Page struct {
	baseURL  string
	siteURL  string
	menuSlug string
	hook     string
}

// NewPage builds the page from the admin configuration.
func NewPage(cfg *config.Config) *Page {
	page := &Page{
		baseURL:  MountPath,
		menuSlug: "product-interest-list",
	}

	if cfg != nil && cfg.Admin != nil {
		if base := strings.TrimRight(strings.TrimSpace(cfg.Admin.BaseURL), "/"); base != "" {
			page.baseURL = base
		}
		page.siteURL = strings.TrimRight(strings.TrimSpace(cfg.Admin.SiteURL), "/")
		if slug := strings.TrimSpace(cfg.Admin.MenuSlug); slug != "" {
			page.menuSlug = slug
		}
	}
	page.hook = usecase.SettingsPageHook(page.menuSlug)

	return page
}

// Hook is the page identifier the bulk action guard compares against.
func (p *Page) Hook() string {
	return p.hook
}

// MenuSlug is the page query value of the list page.
func (p *Page) MenuSlug() string {
	return p.menuSlug
}

// SettingsURL returns the list page URL. Outside an administrative context
// there is no settings page and ok is false.
func (p *Page) SettingsURL(isAdmin bool) (settingsURL string, ok bool) {
	if !isAdmin {
		return "", false
	}

	return p.URL(nil), true
}

// URL returns the list page URL carrying args on top of the fixed route.
func (p *Page) URL(args url.Values) string {
	query := url.Values{}
	for key, values := range args {
		query[key] = values
	}
	query.Set(paramType, constants.AdminPostType)
	query.Set(paramPage, p.menuSlug)

	return p.baseURL + ProductsPath + "?" + query.Encode()
}

// ListURL returns the list page URL for a sort and page state.
func (p *Page) ListURL(query listtable.Query) string {
	args := url.Values{}
	if query.OrderBy != "" {
		args.Set(listtable.ParamOrderBy, query.OrderBy)
	}
	if query.Order != "" {
		args.Set(listtable.ParamOrder, query.Order)
	}
	if query.Page > 1 {
		args.Set(listtable.ParamPage, strconv.Itoa(query.Page))
	}

	return p.URL(args)
}

// ExportURL returns the CSV export URL for a sort state.
func (p *Page) ExportURL(query listtable.Query) string {
	args := url.Values{}
	if query.OrderBy != "" {
		args.Set(listtable.ParamOrderBy, query.OrderBy)
	}
	if query.Order != "" {
		args.Set(listtable.ParamOrder, query.Order)
	}

	target := p.baseURL + ExportPath
	if len(args) > 0 {
		target += "?" + args.Encode()
	}

	return target
}

// CustomerURL links to the customer profile screen.
func (p *Page) CustomerURL(customerID int64) string {
	return fmt.Sprintf("%s%s/%d", p.baseURL, customersPath, customerID)
}

// OrdersURL links to the order list filtered by customer.
func (p *Page) OrdersURL(customerID int64) string {
	args := url.Values{}
	args.Set("customer_id", strconv.FormatInt(customerID, 10))
	args.Set("status", "all")

	return p.baseURL + ordersPath + "?" + args.Encode()
}

// ProductEditURL links to the product edit screen.
func (p *Page) ProductEditURL(productID int64) string {
	return fmt.Sprintf("%s%s/%d/edit", p.baseURL, ProductsPath, productID)
}

// ProductViewURL links to the storefront product page.
func (p *Page) ProductViewURL(productID int64, slug string) string {
	if slug == "" {
		return fmt.Sprintf("%s/?p=%d", p.siteURL, productID)
	}

	return p.siteURL + "/product/" + url.PathEscape(slug) + "/"
}

// HookFromQuery derives the page identifier of a request to the product menu.
func HookFromQuery(values url.Values) string {
	page := strings.TrimSpace(values.Get(paramPage))
	if values.Get(paramType) != constants.AdminPostType || page == "" {
		return ""
	}

	return usecase.SettingsPageHook(page)
}

// IsSettingsPage reports whether hook is the list page.
func (p *Page) IsSettingsPage(hook string) bool {
	return hook == p.hook
}

// RedirectWithStatus sends the browser back to the list page with args and,
// unless disabled, the response flag. Callers return its result immediately.
func (p *Page) RedirectWithStatus(c echo.Context, args url.Values, includeStatus bool) error {
	query := url.Values{}
	for key, values := range args {
		query[key] = values
	}
	if includeStatus {
		query.Set(constants.ResponseFlagParam, "1")
	}

	return c.Redirect(http.StatusSeeOther, p.URL(query))
}

// Notice is the message shown after a redirect back to the list.
type Notice struct {
	Success bool
	Message string
}

// NoticeFromQuery reads the redirect payload, nil without the response flag.
func NoticeFromQuery(values url.Values) *Notice {
	if values.Get(constants.ResponseFlagParam) != "1" {
		return nil
	}

	if values.Get(ParamSuccess) == "1" {
		count := util.AbsInt(values.Get(ParamCount))
		if count == 1 {
			return &Notice{Success: true, Message: "1 subscription removed."}
		}

		return &Notice{Success: true, Message: fmt.Sprintf("%d subscriptions removed.", count)}
	}

	switch values.Get(ParamErrCode) {
	case usecase.ErrCodeBadNonce:
		return &Notice{Message: "The security check failed. Reload the page and try again."}
	case usecase.ErrCodeNoIDs:
		return &Notice{Message: "No subscriptions were selected."}
	default:
		return &Notice{Message: "There was an error processing your request."}
	}
}
