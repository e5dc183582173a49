package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/middleware"
)

// ValidateJSON validates the request JSON body against s, stores the validated
// T in the request context on success, or returns 400 with the issue payload.
func ValidateJSON[T any](s validkit.Typed[T], opts ...validkit.Opt) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := middleware.DecodeJSON(c.Request().Body, s, opts...)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorBody(err))
			}
			ctx := middleware.ContextWithValidated(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValidated fetches the validated T from echo.Context.
func GetValidated[T any](c echo.Context) (T, bool) {
	return middleware.ValidatedFromContext[T](c.Request().Context())
}
