package finalize_reservation

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
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
)

type mockService struct {
	err    error
	method *domain.PaymentMethod
	calls  int
}

func (m *mockService) Finalize(_ context.Context, id string, method *domain.PaymentMethod) (*domain.Reservation, error) {
	m.calls++
	m.method = method
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Reservation{ID: id, Status: domain.StatusFinalized, PaymentMethod: method}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doFinalize(h *Handler, body string, role domain.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/R1/finalize", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": "R1"})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: "x", Role: role}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Finalize(t *testing.T) {
	t.Run("cashier with payment method", func(t *testing.T) {
		svc := &mockService{}
		rec := doFinalize(NewHandler(svc, nopLogger{}), `{"paymentMethod":"card"}`, domain.RoleCashier)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"paymentMethod":"card"`)
		require.NotNil(t, svc.method)
		assert.Equal(t, domain.PaymentCard, *svc.method)
	})

	t.Run("customer and chef are forbidden", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleChef} {
			svc := &mockService{}
			rec := doFinalize(NewHandler(svc, nopLogger{}), "", role)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Zero(t, svc.calls)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		svc := &mockService{}
		rec := doFinalize(NewHandler(svc, nopLogger{}), `{"paymentMethod":"bitcoin"}`, domain.RoleCashier)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.calls)
	})

	tests := map[error]int{
		reservations.ErrReservationNotFound: http.StatusNotFound,
		reservations.ErrInvalidTransition:   http.StatusConflict,
		reservations.ErrNotEditable:         http.StatusConflict,
		reservations.ErrPersistence:         http.StatusInternalServerError,
	}
	for err, want := range tests {
		rec := doFinalize(NewHandler(&mockService{err: err}, nopLogger{}), "", domain.RoleCashier)
		assert.Equal(t, want, rec.Code, err.Error())
	}
}
