package http

import (
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated caller's identifier. An upstream
// gateway terminates authentication and forwards the identity; this service
// trusts the header as-is.
const HeaderUserID = "X-User-Id"

// HeaderUserRole carries the caller's role as asserted by the gateway.
const HeaderUserRole = "X-User-Role"

const roleDriver = "driver"

// principal extracts the calling user's identifier from the request.
func principal(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(HeaderUserID)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}
	return id, nil
}

// driverPrincipal extracts the caller's identifier and requires the driver
// role. Claiming and fulfilment are driver-only even when the caller owns
// the job; otherwise a sender could courier their own parcel and then
// review themselves as its driver.
func driverPrincipal(ctx echo.Context) (kernel.UUID, error) {
	id, err := principal(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	if role := ctx.Request().Header.Get(HeaderUserRole); role != roleDriver {
		return kernel.UUID{}, errs.NewForbiddenError(
			id.String(), "perform", "driver operations without the driver role")
	}
	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
