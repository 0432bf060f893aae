package get_weekly_menu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu/models"
)

type mockService struct {
	err     error
	venueID string
}

func (m *mockService) GetWeek(_ context.Context, venueID string) (*models.WeeklyMenuResponse, error) {
	m.venueID = venueID
	if m.err != nil {
		return nil, m.err
	}
	return &models.WeeklyMenuResponse{
		VenueID: venueID,
		Entries: []models.MenuEntryResponse{{
			Weekday: "monday",
			Meal:    "lunch",
			Dishes:  []models.MenuItemResponse{{ID: "1", Name: "Cazuela", Price: 4500, Available: true}},
			Price:   4500,
		}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doGet(h *Handler, venueID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/"+venueID+"/weekly-menu", nil)
	req = mux.SetURLVars(req, map[string]string{"venueId": venueID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockService{}
		rec := doGet(NewHandler(svc, nopLogger{}), "1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", svc.venueID)
		assert.Contains(t, rec.Body.String(), `"weekday":"monday"`)
		assert.Contains(t, rec.Body.String(), `"name":"Cazuela"`)
	})

	tests := map[error]int{
		menu.ErrInvalidInput:     http.StatusBadRequest,
		menu.ErrVenueNotFound:    http.StatusNotFound,
		menu.ErrPersistence:      http.StatusInternalServerError,
		errors.New("unexpected"): http.StatusInternalServerError,
	}
	for svcErr, code := range tests {
		rec := doGet(NewHandler(&mockService{err: svcErr}, nopLogger{}), "1")
		assert.Equal(t, code, rec.Code, svcErr.Error())
	}
}
