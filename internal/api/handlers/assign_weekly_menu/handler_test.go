package assign_weekly_menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/api/middleware"
	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu/models"
)

type mockService struct {
	err   error
	req   *models.AssignRequest
	calls int
}

func (m *mockService) Assign(_ context.Context, req *models.AssignRequest) (*models.MenuEntryResponse, error) {
	m.calls++
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.MenuEntryResponse{Weekday: "monday", Meal: "lunch", UpdatedBy: req.UpdatedBy}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doAssign(h *Handler, body string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/venues/1/weekly-menu/monday/lunch", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"venueId": "1", "weekday": "monday", "meal": "lunch"})
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Assign(t *testing.T) {
	chef := &domain.Actor{UserID: "chef-1", Role: domain.RoleChef}

	t.Run("chef assigns", func(t *testing.T) {
		svc := &mockService{}
		rec := doAssign(NewHandler(svc, nopLogger{}),
			`{"dishIds":["1","2"],"drinkIds":["6"],"dessertIds":[]}`, chef)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.req)
		assert.Equal(t, "1", svc.req.VenueID)
		assert.Equal(t, "monday", svc.req.Weekday)
		assert.Equal(t, "lunch", svc.req.Meal)
		assert.Equal(t, []string{"1", "2"}, svc.req.DishIDs)
		assert.Equal(t, "chef-1", svc.req.UpdatedBy)
		assert.Contains(t, rec.Body.String(), `"updatedBy":"chef-1"`)
	})

	t.Run("customer and cashier are forbidden", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleCashier} {
			svc := &mockService{}
			rec := doAssign(NewHandler(svc, nopLogger{}), `{}`, &domain.Actor{UserID: "x", Role: role})
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Zero(t, svc.calls)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		rec := doAssign(NewHandler(&mockService{}, nopLogger{}), `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown field in body", func(t *testing.T) {
		svc := &mockService{}
		rec := doAssign(NewHandler(svc, nopLogger{}), `{"platos":["1"]}`, chef)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.calls)
	})

	tests := map[error]int{
		menu.ErrInvalidInput:       http.StatusBadRequest,
		menu.ErrConsumableNotFound: http.StatusBadRequest,
		menu.ErrVenueNotFound:      http.StatusNotFound,
		menu.ErrPersistence:        http.StatusInternalServerError,
	}
	for svcErr, code := range tests {
		rec := doAssign(NewHandler(&mockService{err: svcErr}, nopLogger{}), `{"dishIds":["1"]}`, chef)
		assert.Equal(t, code, rec.Code, svcErr.Error())
	}
}
