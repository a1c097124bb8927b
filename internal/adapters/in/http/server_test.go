package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deliverymarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", "abc"), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("user", "cancel", "order"), http.StatusForbidden},
		{"invalid transition", errs.NewInvalidTransitionError("delivered", "pending"), http.StatusConflict},
		{"already assigned", errs.NewAlreadyAssignedError("abc"), http.StatusConflict},
		{"already reviewed", errs.NewAlreadyReviewedError("reviewer", "job"), http.StatusConflict},
		{"invalid item", errs.NewInvalidItemError("abc", "unavailable"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("weightKg"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("address"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}

func TestPrincipal(t *testing.T) {
	e := echo.New()

	makeContext := func(headerValue string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if headerValue != "" {
			req.Header.Set(HeaderUserID, headerValue)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("valid header returns user id", func(t *testing.T) {
		id, err := principal(makeContext("207addd6-79a8-4b8d-9c87-475b89c46421"))
		require.NoError(t, err)
		assert.Equal(t, "207addd6-79a8-4b8d-9c87-475b89c46421", id.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		_, err := principal(makeContext(""))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		_, err := principal(makeContext("not-a-uuid"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriverPrincipal(t *testing.T) {
	e := echo.New()

	makeContext := func(role string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(HeaderUserID, "207addd6-79a8-4b8d-9c87-475b89c46421")
		if role != "" {
			req.Header.Set(HeaderUserRole, role)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("driver role passes", func(t *testing.T) {
		id, err := driverPrincipal(makeContext("driver"))
		require.NoError(t, err)
		assert.Equal(t, "207addd6-79a8-4b8d-9c87-475b89c46421", id.String())
	})

	t.Run("customer role is forbidden", func(t *testing.T) {
		_, err := driverPrincipal(makeContext("customer"))
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		_, err := driverPrincipal(makeContext(""))
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

// A sender claiming or fulfilling their own job would let them review
// themselves as its driver, so claim and status routes demand the driver
// role from the gateway.
func TestRoutes_DriverRoutesRequireDriverRole(t *testing.T) {
	e := echo.New()
	server := &Server{}
	server.RegisterRoutes(e)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/orders/207addd6-79a8-4b8d-9c87-475b89c46421/claim"},
		{http.MethodPatch, "/api/v1/orders/207addd6-79a8-4b8d-9c87-475b89c46421/status"},
		{http.MethodPost, "/api/v1/parcels/207addd6-79a8-4b8d-9c87-475b89c46421/claim"},
		{http.MethodPatch, "/api/v1/parcels/207addd6-79a8-4b8d-9c87-475b89c46421/status"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(HeaderUserID, "3d5f3e7a-9c1b-4f6d-8a2e-0b7c6d5e4f3a")
			req.Header.Set(HeaderUserRole, "customer")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestRoutes_RejectUnauthenticatedRequests(t *testing.T) {
	e := echo.New()
	server := &Server{}
	server.RegisterRoutes(e)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders/available"},
		{http.MethodPost, "/api/v1/orders/207addd6-79a8-4b8d-9c87-475b89c46421/claim"},
		{http.MethodPost, "/api/v1/parcels"},
		{http.MethodGet, "/api/v1/parcels/available"},
		{http.MethodPatch, "/api/v1/parcels/207addd6-79a8-4b8d-9c87-475b89c46421/status"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), HeaderUserID)
		})
	}
}

func TestRoutes_RejectMalformedIdentifiers(t *testing.T) {
	e := echo.New()
	server := &Server{}
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	req.Header.Set(HeaderUserID, "207addd6-79a8-4b8d-9c87-475b89c46421")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
