package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CanteenService/internal/domain"
	"github.com/m04kA/SMC-CanteenService/pkg/ptr"
)

func legacySet() []*domain.Reservation {
	return []*domain.Reservation{
		{ID: "R001", Status: "pendiente", ShiftID: ptr.Ptr("1-2-2025-10-25")},
		{ID: "R002", Status: "confirmada"},
		{ID: "R003", Status: "pagada"},
		{ID: "R004", Status: "cancelled"},
		{ID: "R005", Status: "FINALIZED"},
		{ID: "R006", Status: "ACTIVA", Meal: ptr.Ptr(domain.Meal("Almuerzo"))},
		{ID: "R007", Status: ""},
		{ID: "R008", Status: " Active "},
	}
}

func TestNormalize_StatusesInEnumeration(t *testing.T) {
	got, report := Normalize(legacySet())

	require.Len(t, got, 8)
	for _, r := range got {
		assert.True(t, r.Status.IsValid(), "reservation %s has status %q", r.ID, r.Status)
	}

	assert.Equal(t, domain.StatusActive, got[0].Status)
	assert.Equal(t, domain.StatusActive, got[1].Status)
	assert.Equal(t, domain.StatusActive, got[2].Status)
	assert.Equal(t, domain.StatusCancelled, got[3].Status)
	assert.Equal(t, domain.StatusFinalized, got[4].Status)
	assert.Equal(t, domain.StatusActive, got[5].Status)
	assert.Equal(t, domain.StatusActive, got[6].Status)
	assert.Equal(t, domain.StatusActive, got[7].Status)

	assert.Equal(t, 8, report.Total)
	assert.Equal(t, 5, report.StatusCoerced)
	assert.Equal(t, 1, report.LegacyStatuses["pendiente"])
	assert.Equal(t, 1, report.MealsRenamed)
	assert.Equal(t, domain.MealLunch, *got[5].Meal)
	assert.ElementsMatch(t, []string{"R001", "R002", "R003", "R004", "R006", "R007", "R008"}, report.ChangedIDs)
}

func TestNormalize_Idempotent(t *testing.T) {
	once, _ := Normalize(legacySet())
	twice, report := Normalize(once)

	assert.Equal(t, once, twice)
	assert.False(t, report.Changed())
	assert.Zero(t, report.StatusCoerced)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	input := legacySet()

	_, _ = Normalize(input)

	assert.Equal(t, domain.ReservationStatus("pendiente"), input[0].Status)
}

func TestNormalize_LegacyShiftKeepsNoSlot(t *testing.T) {
	got, _ := Normalize([]*domain.Reservation{
		{ID: "R001", Status: "pendiente", ShiftID: ptr.Ptr("1-2-2025-10-25")},
	})

	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusActive, got[0].Status)
	assert.Nil(t, got[0].SlotID)
	assert.False(t, got[0].HoldsSlot())
}

func TestNormalize_SkipsNil(t *testing.T) {
	got, report := Normalize([]*domain.Reservation{nil, {ID: "a", Status: domain.StatusActive}})

	assert.Len(t, got, 1)
	assert.Equal(t, 2, report.Total)
}
