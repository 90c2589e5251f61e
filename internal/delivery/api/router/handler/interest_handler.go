package handler

import (
	"log/slog"
	"net/http"

	"interest/internal/delivery/api/middleware"
	"interest/internal/delivery/api/response"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/listtable"
	"interest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultSubscribersPerPage = 20

// InterestHandlerParams holds dependencies for InterestHandler, injected by Fx.
type InterestHandlerParams struct {
	fx.In

	ProductUC      usecase.ProductUsecase
	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// InterestHandler serves the product interest lookups of the JSON API
type InterestHandler struct {
	productUC      usecase.ProductUsecase
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewInterestHandler is the constructor for InterestHandler
func NewInterestHandler(params InterestHandlerParams) *InterestHandler {
	return &InterestHandler{
		productUC:      params.ProductUC,
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// IDRequest binds a positive numeric path ID
type IDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

// SubscribersRequest selects a product and a page of its subscribers
type SubscribersRequest struct {
	ID      int64 `param:"id" validate:"required,gt=0"`
	Page    int   `query:"page" validate:"gte=0"`
	PerPage int   `query:"per_page" validate:"gte=0,lte=100"`
}

// ProductInterestResponse is the interest flag of one product
type ProductInterestResponse struct {
	ProductID int64  `json:"product_id"`
	Enabled   bool   `json:"enabled"`
	Status    string `json:"status"`
}

// CustomerProductsResponse lists the products a customer subscribed to
type CustomerProductsResponse struct {
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

func (h *InterestHandler) bindID(c echo.Context) (int64, bool) {
	var req IDRequest
	if err := c.Bind(&req); err != nil {
		return 0, false
	}
	if err := c.Validate(&req); err != nil {
		return 0, false
	}

	return req.ID, true
}

func invalidID(c echo.Context) error {
	return response.Fail(c, domainerrors.ErrInvalidID)
}

// GetProductInterest reports whether a product accepts interest subscriptions
func (h *InterestHandler) GetProductInterest(c echo.Context) error {
	productID, ok := h.bindID(c)
	if !ok {
		return invalidID(c)
	}

	ctx := c.Request().Context()

	enabled, err := h.productUC.IsProductEnabled(ctx, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := usecase.ProductStatusNo
	if enabled {
		status = usecase.ProductStatusYes
	}

	return response.Success(c, http.StatusOK, ProductInterestResponse{
		ProductID: productID,
		Enabled:   enabled,
		Status:    status,
	})
}

// GetProductSubscribers lists one page of the customers subscribed to a product
func (h *InterestHandler) GetProductSubscribers(c echo.Context) error {
	var req SubscribersRequest
	if err := c.Bind(&req); err != nil {
		return invalidID(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.FailWithMessage(c, domainerrors.ErrValidationFailed, err.Error())
	}

	customers, err := h.subscriptionUC.GetCustomersForProduct(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	perPage := req.PerPage
	if perPage == 0 {
		perPage = defaultSubscribersPerPage
	}
	totalPages := listtable.TotalPages(len(customers), perPage)
	page := listtable.ClampPage(req.Page, totalPages)

	return response.Paginated(c, listtable.Paginate(customers, page, perPage), &response.PageInfo{
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(customers),
		TotalPages: totalPages,
	})
}

// GetCustomerProducts lists the products a customer subscribed to
func (h *InterestHandler) GetCustomerProducts(c echo.Context) error {
	customerID, ok := h.bindID(c)
	if !ok {
		return invalidID(c)
	}

	// Customers only see their own subscriptions
	if userID, _ := middleware.GetUserID(c); userID != customerID && !middleware.IsStaff(c) {
		return response.Fail(c, domainerrors.ErrForbidden)
	}

	productIDs, err := h.subscriptionUC.GetProductsForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if productIDs == nil {
		productIDs = []int64{}
	}

	return response.Success(c, http.StatusOK, CustomerProductsResponse{
		CustomerID: customerID,
		ProductIDs: productIDs,
	})
}
