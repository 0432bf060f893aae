package list_consumables

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/infra/storage/catalog"
	catalogService "github.com/m04kA/SMC-CanteenService/internal/service/catalog"
)

const menu = `
[[venues]]
id = "1"
name = "Comedor Central"
address = "Avenida Principal 123"
capacity = 100

[[consumables]]
id = "1"
name = "Milanesa con Pure"
type = "dish"
price = 850.0
available = true

[[consumables]]
id = "5"
name = "Coca Cola"
type = "drink"
price = 200.0
available = true
`

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler(t *testing.T) *Handler {
	repo, err := catalog.Parse(menu)
	require.NoError(t, err)
	return NewHandler(catalogService.NewService(repo, 2000, nopLogger{}), nopLogger{})
}

func TestHandler(t *testing.T) {
	h := newHandler(t)

	t.Run("all", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/consumables", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Milanesa con Pure")
		assert.Contains(t, rec.Body.String(), "Coca Cola")
	})

	t.Run("drinks only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/consumables?type=drink", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Milanesa")
		assert.Contains(t, rec.Body.String(), "Coca Cola")
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/consumables?type=snack", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
