package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "interest/internal/delivery/context"
	domainerrors "interest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil), rec)
	deliverycontext.SetRequestID(c, "req-7")

	return c, rec
}

func TestPaginated(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Paginated(c, []int{1, 2}, &PageInfo{Page: 2, PerPage: 2, TotalItems: 5, TotalPages: 3}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [1, 2],
		"pagination": {"page": 2, "per_page": 2, "total_items": 5, "total_pages": 3},
		"meta": {"request_id": "req-7"}
	}`, rec.Body.String())
}

func TestError_DropsDetails(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "forbidden drops details", status: http.StatusForbidden},
		{name: "server error drops details", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", map[string]string{"field": "id"}))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("domain error written", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrProductNotFound, "product 9"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
	})

	t.Run("other errors passed on", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("connection reset")

		err := HandleAppError(c, cause)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestFailWithMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, FailWithMessage(c, domainerrors.ErrValidationFailed, "per_page must be at most 100"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "per_page must be at most 100")
}
