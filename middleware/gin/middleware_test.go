package ginmw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/dsl"
)

type item struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

var itemSchema = validkit.Define[item](validkit.Object().
	Field("sku", dsl.Str()).
	Field("qty", dsl.Int().Min(1).Default(1)))

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/items", ValidateJSON(itemSchema), func(c *gin.Context) {
		v, ok := GetValidated[item](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, v)
	})
	return r
}

func TestValidateJSON(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"sku":"A-1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"sku":"A-1","qty":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"qty":0}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"path":"sku"`)
	require.Contains(t, rec.Body.String(), `"path":"qty"`)
}
