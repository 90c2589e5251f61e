package admin

import (
	"fmt"
	"html"
	"html/template"
	"math/rand/v2"
	"strings"
	"time"

	"interest/config"
	"interest/internal/domain/constants"
	"interest/internal/domain/entity"
	"interest/internal/listtable"
	"interest/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

const defaultDateFormat = "%Y-%m-%d"

// Row action keys.
const (
	ActionView   = "view"
	ActionOrders = "orders"
	ActionEmail  = "email"
)

// RowAction is one link below the customer name. Filters drop an action by clearing its URL.
type RowAction struct {
	Key   string
	Label string

	// URL is written into the href attribute as is and must already be HTML-escaped
	URL string
}

// RowActions is the action set of one row.
type RowActions struct {
	Row     *entity.Row
	Actions []RowAction
}

// Cell is the markup of one column of a row.
type Cell struct {
	Column string
	Row    *entity.Row
	HTML   template.HTML
}

// RowRenderer formats list rows into cell markup. The filters run in
// registration order and are empty by default.
type RowRenderer struct {
	page       *Page
	dateFormat string
	now        func() time.Time
	intn       func(n int) int

	// Actions rewrites the row actions of the name column
	Actions listtable.Filter[RowActions]

	// Cells rewrites the markup of the known columns
	Cells listtable.Filter[Cell]

	// Default renders columns the renderer does not know
	Default listtable.Filter[Cell]

	// DateFormat rewrites the strftime layout of the signup date
	DateFormat listtable.Filter[string]
}

// NewRowRenderer creates a renderer for page using the configured date format.
func NewRowRenderer(page *Page, cfg *config.Config) *RowRenderer {
	dateFormat := defaultDateFormat
	if cfg != nil && cfg.Admin != nil && strings.TrimSpace(cfg.Admin.DateFormat) != "" {
		dateFormat = cfg.Admin.DateFormat
	}

	return &RowRenderer{
		page:       page,
		dateFormat: dateFormat,
		now:        time.Now,
		intn:       rand.IntN,
	}
}

// Render returns the markup of row for column.
func (r *RowRenderer) Render(row *entity.Row, column string) template.HTML {
	var markup string

	switch column {
	case usecase.ColumnCheckbox:
		markup = r.checkbox(row)
	case usecase.ColumnVisibleName:
		markup = r.visibleName(row)
	case usecase.ColumnProductName:
		markup = r.productName(row)
	case usecase.ColumnSignupDate:
		markup = r.signupDate(row)
	default:
		return r.Default.Apply(Cell{Column: column, Row: row}).HTML
	}

	//nolint:gosec // every interpolated value is escaped above
	return r.Cells.Apply(Cell{Column: column, Row: row, HTML: template.HTML(markup)}).HTML
}

// RenderRow returns the cells of row in column order.
func (r *RowRenderer) RenderRow(row *entity.Row, columns []listtable.Column) []template.HTML {
	cells := make([]template.HTML, 0, len(columns))
	for _, column := range columns {
		cells = append(cells, r.Render(row, column.Key))
	}

	return cells
}

func (r *RowRenderer) checkbox(row *entity.Row) string {
	return fmt.Sprintf(
		`<input type="checkbox" name="%s" class="wc-product-subscriptions-admin-checkbox" id="cb-%d" value="%d" />`+
			`<label for="cb-%d" class="screen-reader-text">Select subscription</label>`,
		html.EscapeString(constants.FieldRelationshipIDs), row.ID, row.ID, row.ID,
	)
}

func (r *RowRenderer) visibleName(row *entity.Row) string {
	var b strings.Builder

	b.WriteString(`<span class="wc-product-subscriptions-admin-table-display wc-product-subscriptions-admin-table-name">`)
	b.WriteString(`<strong>` + html.EscapeString(row.DisplayName) + `</strong>`)
	b.WriteString(`</span>`)
	fmt.Fprintf(&b, `<input type="hidden" name="%s" value="%d">`, html.EscapeString(constants.FieldCustomerIDs), row.CustomerID)
	b.WriteString(r.rowActions(row))

	return b.String()
}

func (r *RowRenderer) rowActions(row *entity.Row) string {
	set := r.Actions.Apply(RowActions{
		Row: row,
		Actions: []RowAction{
			{Key: ActionView, Label: "View Customer", URL: html.EscapeString(r.page.CustomerURL(row.CustomerID))},
			{Key: ActionOrders, Label: "View Orders", URL: html.EscapeString(r.page.OrdersURL(row.CustomerID))},
			{Key: ActionEmail, Label: "Email Customer", URL: "mailto:" + r.obfuscateEmail(row.Email, true)},
		},
	})

	links := make([]string, 0, len(set.Actions))
	for _, action := range set.Actions {
		if action.URL == "" {
			continue
		}
		key := html.EscapeString(action.Key)
		label := html.EscapeString(action.Label)
		links = append(links, fmt.Sprintf(
			`<span class="%s"><a class="wc-product-subscriptions-admin-table-link wc-product-subscriptions-admin-table-link-%s" title="%s" href="%s">%s</a></span>`,
			key, key, label, action.URL, label,
		))
	}
	if len(links) == 0 {
		return ""
	}

	return `<div class="row-actions">` + strings.Join(links, " | ") + `</div>`
}

func (r *RowRenderer) productName(row *entity.Row) string {
	var b strings.Builder

	b.WriteString(`<span class="wc-product-subscriptions-admin-table-display wc-product-subscriptions-admin-table-product-name">`)
	b.WriteString(`<strong>` + html.EscapeString(row.ProductName) + `</strong>`)
	b.WriteString(`</span><br>`)
	b.WriteString(`<span class="wc-product-subscriptions-admin-table-display wc-product-subscriptions-admin-table-product-links">`)
	fmt.Fprintf(&b, `<a title="View Product" href="%s">View Product</a>`, html.EscapeString(r.page.ProductViewURL(row.ProductID, row.ProductSlug)))
	b.WriteString(`&nbsp;|&nbsp;`)
	fmt.Fprintf(&b, `<a title="Edit Product" href="%s">Edit Product</a>`, html.EscapeString(r.page.ProductEditURL(row.ProductID)))
	b.WriteString(`</span>`)
	fmt.Fprintf(&b, `<input type="hidden" name="%s" value="%d">`, html.EscapeString(constants.FieldProductIDs), row.ProductID)

	return b.String()
}

func (r *RowRenderer) signupDate(row *entity.Row) string {
	format := r.DateFormat.Apply(r.dateFormat)

	return `<span class="wc-product-subscriptions-admin-table-display wc-product-subscriptions-admin-table-signup-date">` +
		html.EscapeString(strftime.Format(format, row.SignupDate)) + `<br>` +
		`<small><em>` + html.EscapeString(RelativeTime(row.SignupDate, r.now())) + `</em></small>` +
		`</span>`
}

// RelativeTime describes then relative to now, e.g. "3 days ago".
func RelativeTime(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}

// obfuscateEmail emits each character of address as itself or as a decimal
// entity, or with hex set also as a percent-encoding. The @ is always an entity.
func (r *RowRenderer) obfuscateEmail(address string, hex bool) string {
	choices := 2
	if hex {
		choices = 3
	}

	var b strings.Builder
	for _, ch := range address {
		if ch == '@' {
			b.WriteString("&#64;")

			continue
		}

		switch r.intn(choices) {
		case 0:
			fmt.Fprintf(&b, "&#%d;", ch)
		case 1:
			b.WriteString(html.EscapeString(string(ch)))
		default:
			for _, octet := range []byte(string(ch)) {
				fmt.Fprintf(&b, "%%%02x", octet)
			}
		}
	}

	return b.String()
}
