package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/middleware"
)

// ValidateJSON validates the request JSON body against s with opts (or
// middleware.DefaultOpt when none are given), stores the validated T in the
// request context, and on failure aborts with 400 and the issue payload.
func ValidateJSON[T any](s validkit.Typed[T], opts ...validkit.Opt) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := middleware.DecodeJSON(c.Request.Body, s, opts...)
		if err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody(err))
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValidated(c.Request.Context(), v))
		c.Next()
	}
}

// GetValidated fetches the validated T from gin.Context.
func GetValidated[T any](c *gin.Context) (T, bool) {
	return middleware.ValidatedFromContext[T](c.Request.Context())
}
