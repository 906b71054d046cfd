package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	bookingRepo "github.com/yagera/bazaar-mtuci/internal/infra/storage/booking"
	"github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
	"github.com/yagera/bazaar-mtuci/internal/integrations/notifysink"
)

const (
	ownerID    = int64(1)
	renterID   = int64(2)
	strangerID = int64(3)
)

type fakeBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	updateErr    error
	updatedTo    *domain.BookingStatus
	updateCalled bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copy := *f.booking
	return &copy, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updateCalled = true
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedTo = &status
	return nil
}

type fakeItemClient struct {
	item *itemservice.Item
	err  error
}

func (f *fakeItemClient) GetItem(_ context.Context, _ int64) (*itemservice.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.item, nil
}

type fakeSink struct {
	sent []*notifysink.Notification
}

func (f *fakeSink) Send(_ context.Context, n *notifysink.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:         50,
		ItemID:     10,
		RenterID:   renterID,
		StartTime:  start,
		EndTime:    start.Add(3 * time.Hour),
		TotalPrice: decimal.RequireFromString("300"),
		Status:     status,
	}
}

func testItem() *itemservice.Item {
	return &itemservice.Item{
		ID:          10,
		OwnerID:     ownerID,
		Title:       "Палатка 4-местная",
		PricingMode: itemservice.PricingModeRent,
		IsActive:    true,
	}
}

func execute(t *testing.T, repo *fakeBookingRepo, sink *fakeSink, actorID int64, target string) (*Response, error) {
	t.Helper()
	uc := NewUseCase(repo, &fakeItemClient{item: testItem()}, sink, nopLogger{})
	return uc.Execute(context.Background(), &Request{
		BookingID:    50,
		ActorID:      actorID,
		TargetStatus: target,
	})
}

func TestExecute_OwnerConfirmsPending(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "confirmed")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, repo.updatedTo)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedTo)

	// Арендатор получает уведомление о подтверждении
	require.Len(t, sink.sent, 1)
	assert.Equal(t, renterID, sink.sent[0].UserID)
	assert.Equal(t, notifysink.TypeBookingConfirmed, sink.sent[0].Type)
}

func TestExecute_OwnerRejectsPending(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "rejected")
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, notifysink.TypeBookingRejected, sink.sent[0].Type)
}

func TestExecute_OwnerCancelOfPendingBecomesRejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "cancelled")
	require.NoError(t, err)

	// Отмена владельцем до подтверждения фиксируется как отклонение
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, repo.updatedTo)
	assert.Equal(t, domain.StatusRejected, *repo.updatedTo)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, notifysink.TypeBookingRejected, sink.sent[0].Type)
}

func TestExecute_RenterCancelsConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, renterID, "cancelled")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)

	// Владелец получает уведомление об отмене арендатором
	require.Len(t, sink.sent, 1)
	assert.Equal(t, ownerID, sink.sent[0].UserID)
	assert.Equal(t, notifysink.TypeBookingCancelledByRenter, sink.sent[0].Type)
}

func TestExecute_OwnerCancelsConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "cancelled")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, renterID, sink.sent[0].UserID)
	assert.Equal(t, notifysink.TypeBookingCancelledByOwner, sink.sent[0].Type)
}

func TestExecute_OwnerCompletesConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "completed")
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	// Завершение не порождает уведомлений
	assert.Empty(t, sink.sent)
}

func TestExecute_StrangerHasNoAccess(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}

	_, err := execute(t, repo, &fakeSink{}, strangerID, "confirmed")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updateCalled)
}

func TestExecute_RenterCannotConfirm(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}

	_, err := execute(t, repo, &fakeSink{}, renterID, "confirmed")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, repo.updateCalled)
}

func TestExecute_CannotCancelCompleted(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusCompleted)}

	_, err := execute(t, repo, &fakeSink{}, renterID, "cancelled")
	assert.ErrorIs(t, err, ErrTerminalStatus)
	assert.False(t, repo.updateCalled)
}

func TestExecute_SameStatusIsNoOp(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	sink := &fakeSink{}

	resp, err := execute(t, repo, sink, ownerID, "confirmed")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.False(t, repo.updateCalled)
	assert.Empty(t, sink.sent)
}

func TestExecute_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}

	_, err := execute(t, repo, &fakeSink{}, ownerID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}

	_, err := execute(t, repo, &fakeSink{}, ownerID, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
