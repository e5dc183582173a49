// Package middleware validates HTTP JSON request bodies with validkit schemas.
// The net/http Handler lives here; gin and echo adapters are separate modules
// under middleware/gin and middleware/echo.
package middleware
