package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestNewQueryParams_Defaults(t *testing.T) {
	p := NewQueryParams(newContext("/courts"))

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
	assert.Empty(t, p.Search)
	assert.Equal(t, 0, p.Offset())
}

func TestNewQueryParams_ClampsPageSize(t *testing.T) {
	p := NewQueryParams(newContext("/courts?page_number=3&page_size=500&search=%20padel%20"))

	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, "padel", p.Search)
	assert.Equal(t, 200, p.Offset())
}

func TestNewQueryParams_InvalidValues(t *testing.T) {
	p := NewQueryParams(newContext("/courts?page_number=-2&page_size=abc"))

	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)
}
