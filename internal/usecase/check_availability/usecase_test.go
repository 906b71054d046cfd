package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yagera/bazaar-mtuci/internal/domain"
	"github.com/yagera/bazaar-mtuci/internal/integrations/itemservice"
)

type fakeBookingRepo struct {
	conflict *domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
	return f.conflict, nil
}

type fakeAvailRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeAvailRepo) GetOverlappingDates(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
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

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func testItem() *itemservice.Item {
	hourly := decimal.RequireFromString("50")
	return &itemservice.Item{
		ID:           10,
		OwnerID:      1,
		Title:        "Велосипед",
		PricingMode:  itemservice.PricingModeRent,
		PricePerHour: &hourly,
		IsActive:     true,
	}
}

func fullDayWindows() []*domain.AvailabilityWindow {
	return []*domain.AvailabilityWindow{
		{
			StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			StartTime: "00:00",
			EndTime:   "23:59",
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, avail *fakeAvailRepo, items *fakeItemClient) *UseCase {
	uc := NewUseCase(bookings, avail, items, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_Available(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeAvailRepo{windows: fullDayWindows()},
		&fakeItemClient{item: testItem()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, "100", resp.TotalPrice.String())
}

func TestExecute_SlotTaken(t *testing.T) {
	conflict := &domain.Booking{
		ID:        5,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}
	uc := newTestUseCase(
		&fakeBookingRepo{conflict: conflict},
		&fakeAvailRepo{windows: fullDayWindows()},
		&fakeItemClient{item: testItem()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Contains(t, resp.Reason, "Это время уже занято")
	assert.Nil(t, resp.TotalPrice)
}

func TestExecute_OutsideAvailability(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeAvailRepo{},
		&fakeItemClient{item: testItem()},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.NotEmpty(t, resp.Reason)
}

func TestExecute_NotBookable(t *testing.T) {
	item := testItem()
	item.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, &fakeItemClient{item: item})

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "Объявление недоступно для бронирования", resp.Reason)
}

func TestExecute_PastRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, &fakeItemClient{item: testItem()})

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(-2 * time.Hour),
		EndTime:   testNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "Нельзя бронировать на прошедшее время", resp.Reason)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, &fakeItemClient{item: testItem()})

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		StartTime: testNow.Add(3 * time.Hour),
		EndTime:   testNow.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "Конец аренды должен быть позже начала", resp.Reason)
}

func TestExecute_ItemNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, &fakeItemClient{err: itemservice.ErrItemNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    999,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
