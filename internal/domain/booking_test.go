package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_OwnerConfirmsPending(t *testing.T) {
	status, err := Transition(StatusPending, RoleOwner, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)
}

func TestTransition_OwnerRejectsPending(t *testing.T) {
	status, err := Transition(StatusPending, RoleOwner, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status)
}

func TestTransition_OwnerCancelOfPendingBecomesRejected(t *testing.T) {
	status, err := Transition(StatusPending, RoleOwner, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status)
}

func TestTransition_RenterCancelsPending(t *testing.T) {
	status, err := Transition(StatusPending, RoleRenter, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, status)
}

func TestTransition_RenterCannotConfirm(t *testing.T) {
	_, err := Transition(StatusPending, RoleRenter, StatusConfirmed)
	assert.ErrorIs(t, err, ErrForbiddenTransition)
}

func TestTransition_RenterCannotReject(t *testing.T) {
	_, err := Transition(StatusPending, RoleRenter, StatusRejected)
	assert.ErrorIs(t, err, ErrForbiddenTransition)
}

func TestTransition_BothSidesCancelConfirmed(t *testing.T) {
	for _, role := range []Role{RoleRenter, RoleOwner} {
		status, err := Transition(StatusConfirmed, role, StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, status)
	}
}

func TestTransition_OwnerCompletesConfirmed(t *testing.T) {
	status, err := Transition(StatusConfirmed, RoleOwner, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)
}

func TestTransition_RenterCannotComplete(t *testing.T) {
	_, err := Transition(StatusConfirmed, RoleRenter, StatusCompleted)
	assert.ErrorIs(t, err, ErrForbiddenTransition)
}

func TestTransition_PendingCannotBeCompleted(t *testing.T) {
	_, err := Transition(StatusPending, RoleOwner, StatusCompleted)
	assert.ErrorIs(t, err, ErrForbiddenTransition)
}

func TestTransition_TerminalStatusesAreLocked(t *testing.T) {
	for _, current := range []BookingStatus{StatusCancelled, StatusRejected, StatusCompleted} {
		for _, role := range []Role{RoleRenter, RoleOwner} {
			_, err := Transition(current, role, StatusCancelled)
			assert.ErrorIs(t, err, ErrTerminalStatus, "current=%s role=%s", current, role)
		}
	}
}

func TestTransition_InvalidTarget(t *testing.T) {
	_, err := Transition(StatusPending, RoleOwner, BookingStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransition_PendingIsNotAValidTarget(t *testing.T) {
	_, err := Transition(StatusConfirmed, RoleOwner, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseStatus("unknown")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	b := &Booking{
		StartTime: base,
		EndTime:   base.Add(2 * time.Hour),
	}

	// Пересечение посередине
	assert.True(t, b.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)))

	// Полное покрытие
	assert.True(t, b.Overlaps(base.Add(-time.Hour), base.Add(3*time.Hour)))

	// Граница конец-в-начало пересечением не считается
	assert.False(t, b.Overlaps(b.EndTime, b.EndTime.Add(time.Hour)))
	assert.False(t, b.Overlaps(base.Add(-time.Hour), base))
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
}
