package create_booking

import (
	"context"
	"errors"
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

type fakeBookingRepo struct {
	createFn          func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	findOverlappingFn func(ctx context.Context, itemID int64, start, end time.Time, excludeID *int64) (*domain.Booking, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return f.createFn(ctx, booking)
}

func (f *fakeBookingRepo) FindOverlapping(ctx context.Context, itemID int64, start, end time.Time, excludeID *int64) (*domain.Booking, error) {
	return f.findOverlappingFn(ctx, itemID, start, end, excludeID)
}

type fakeAvailRepo struct {
	getOverlappingDatesFn func(ctx context.Context, itemID int64, startDate, endDate time.Time) ([]*domain.AvailabilityWindow, error)
}

func (f *fakeAvailRepo) GetOverlappingDates(ctx context.Context, itemID int64, startDate, endDate time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.getOverlappingDatesFn(ctx, itemID, startDate, endDate)
}

type fakeItemClient struct {
	getItemFn func(ctx context.Context, itemID int64) (*itemservice.Item, error)
}

func (f *fakeItemClient) GetItem(ctx context.Context, itemID int64) (*itemservice.Item, error) {
	return f.getItemFn(ctx, itemID)
}

type fakeSink struct {
	sent    []*notifysink.Notification
	sendErr error
}

func (f *fakeSink) Send(_ context.Context, n *notifysink.Notification) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, n)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	hourly := decimal.RequireFromString("100")
	daily := decimal.RequireFromString("1500")
	return &itemservice.Item{
		ID:           10,
		OwnerID:      1,
		Title:        "Перфоратор Bosch",
		PricingMode:  itemservice.PricingModeRent,
		PricePerHour: &hourly,
		PricePerDay:  &daily,
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

func newTestUseCase(
	bookings *fakeBookingRepo,
	avail *fakeAvailRepo,
	items *fakeItemClient,
	sink *fakeSink,
) *UseCase {
	uc := NewUseCase(bookings, avail, items, sink, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}
	avail := &fakeAvailRepo{
		getOverlappingDatesFn: func(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
			return fullDayWindows(), nil
		},
	}
	bookings := &fakeBookingRepo{
		findOverlappingFn: func(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			created := *b
			created.ID = 77
			created.CreatedAt = testNow
			created.UpdatedAt = testNow
			return &created, nil
		},
	}
	sink := &fakeSink{}

	uc := newTestUseCase(bookings, avail, items, sink)

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "300", resp.TotalPrice.String())

	// Владелец получает уведомление о новом запросе
	require.Len(t, sink.sent, 1)
	assert.Equal(t, int64(1), sink.sent[0].UserID)
	assert.Equal(t, notifysink.TypeNewBookingRequest, sink.sent[0].Type)
}

func TestExecute_CannotBookOwnItem(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  1, // владелец вещи
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrCannotBookOwnItem)
}

func TestExecute_ItemNotFound(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return nil, itemservice.ErrItemNotFound
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    999,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestExecute_SaleItemIsNotBookable(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			item := testItem()
			item.PricingMode = itemservice.PricingModeSale
			return item, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrItemNotBookable)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(2 * time.Hour),
		EndTime:   testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_PastBooking(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPastBooking)
}

func TestExecute_SlotTaken(t *testing.T) {
	conflictStart := testNow.Add(time.Hour)
	conflictEnd := testNow.Add(3 * time.Hour)

	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}
	bookings := &fakeBookingRepo{
		findOverlappingFn: func(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
			return &domain.Booking{ID: 5, StartTime: conflictStart, EndTime: conflictEnd}, nil
		},
	}

	uc := newTestUseCase(bookings, &fakeAvailRepo{}, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(2 * time.Hour),
		EndTime:   testNow.Add(4 * time.Hour),
	})
	require.ErrorIs(t, err, ErrSlotTaken)

	var slotTaken *SlotTakenError
	require.ErrorAs(t, err, &slotTaken)
	assert.Equal(t, conflictStart, slotTaken.ConflictStart)
	assert.Contains(t, slotTaken.Error(), "Это время уже занято")
}

func TestExecute_OutsideAvailability(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}
	avail := &fakeAvailRepo{
		getOverlappingDatesFn: func(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
			return nil, nil
		},
	}
	bookings := &fakeBookingRepo{
		findOverlappingFn: func(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(bookings, avail, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, ErrOutsideAvailability)

	var outside *OutsideAvailabilityError
	require.ErrorAs(t, err, &outside)
	assert.NotEmpty(t, outside.Reason)
}

func TestExecute_OverlapConstraintMapsToSlotTaken(t *testing.T) {
	// Гонка: проверка пересечений прошла, но вставка упёрлась
	// в ограничение БД
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}
	avail := &fakeAvailRepo{
		getOverlappingDatesFn: func(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
			return fullDayWindows(), nil
		},
	}
	bookings := &fakeBookingRepo{
		findOverlappingFn: func(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, _ *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrOverlapConstraint
		},
	}

	uc := newTestUseCase(bookings, avail, items, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	items := &fakeItemClient{
		getItemFn: func(_ context.Context, _ int64) (*itemservice.Item, error) {
			return testItem(), nil
		},
	}
	avail := &fakeAvailRepo{
		getOverlappingDatesFn: func(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
			return fullDayWindows(), nil
		},
	}
	bookings := &fakeBookingRepo{
		findOverlappingFn: func(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			created := *b
			created.ID = 78
			return &created, nil
		},
	}
	sink := &fakeSink{sendErr: errors.New("broker is down")}

	uc := newTestUseCase(bookings, avail, items, sink)

	resp, err := uc.Execute(context.Background(), &Request{
		ItemID:    10,
		RenterID:  2,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(78), resp.ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailRepo{}, &fakeItemClient{}, &fakeSink{})

	_, err := uc.Execute(context.Background(), &Request{
		ItemID:   0,
		RenterID: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
