package bookings

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const lockKey = "booking:lock:Cleaning:2024-05-01:a@x.com"

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.AppBooking{
			EnforceSlotValidity:  true,
			LockExpiryInSeconds:  10,
			MaxAttemptsPerMinute: 0,
		},
		RabbitMQ: config.AppRabbitMQ{PublishTimeoutInSecs: 1},
	}
}

func cleaning() *models.TreatmentOption {
	return &models.TreatmentOption{Name: "Cleaning", Price: 40, Slots: []string{"9:00", "10:00", "11:00"}}
}

func cleaningRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		Email:           "a@x.com",
		Treatment:       "Cleaning",
		AppointmentDate: "2024-05-01",
		Slot:            "9:00",
		Price:           40,
	}
}

type fixture struct {
	bookings   *MockBookingRepository
	treatments *MockTreatmentOptionRepository
	locker     *MockLockerService
	limiter    *MockResourceLimiter
	publisher  *MockEventPublisher
	cfg        *config.InternalConfig
}

func newFixture() *fixture {
	return &fixture{
		bookings:   new(MockBookingRepository),
		treatments: new(MockTreatmentOptionRepository),
		locker:     new(MockLockerService),
		limiter:    new(MockResourceLimiter),
		publisher:  new(MockEventPublisher),
		cfg:        testConfig(),
	}
}

func (f *fixture) usecase() *bookingUsecase {
	return NewBookingUsecase(f.bookings, f.treatments, f.locker, f.limiter, f.publisher, f.cfg, zap.NewNop()).(*bookingUsecase)
}

func (f *fixture) lockAcquired() {
	f.locker.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "lock-1", nil)
	f.locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
}

func TestAdmit_AcceptsNewBooking(t *testing.T) {
	f := newFixture()
	f.lockAcquired()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, "Cleaning", "2024-05-01", "a@x.com").Return(int64(0), nil)

	insertedID := primitive.NewObjectID()
	f.bookings.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return !b.Paid && !b.Cancelled && b.Slot == "9:00" && b.Email == "a@x.com" && !b.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Booking).ID = insertedID
	}).Return(insertedID.Hex(), nil).Once()

	published := make(chan *models.BookingAdmittedEvent, 1)
	f.publisher.On("PublishBookingAdmitted", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		published <- args.Get(1).(*models.BookingAdmittedEvent)
	}).Return(nil)

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	require.NotNil(t, result.Booking)
	assert.Equal(t, insertedID, result.Booking.ID)
	assert.False(t, result.Booking.Paid)

	select {
	case event := <-published:
		assert.Equal(t, insertedID.Hex(), event.BookingID)
		assert.Equal(t, "Cleaning", event.Treatment)
	case <-time.After(2 * time.Second):
		t.Fatal("booking admitted event was not published")
	}
	f.bookings.AssertExpectations(t)
	f.locker.AssertExpectations(t)
}

func TestAdmit_RejectsExistingTriple(t *testing.T) {
	f := newFixture()
	f.lockAcquired()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, "Cleaning", "2024-05-01", "a@x.com").Return(int64(1), nil)

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Nil(t, result.Booking)
	assert.Contains(t, result.Message, "2024-05-01")
	assert.NotContains(t, result.Message, "9:00")
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishBookingAdmitted", mock.Anything, mock.Anything)
	f.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "lock-1")
}

func TestAdmit_ReleasesLockAfterRequestDeadline(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.locker.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "lock-1", nil)
	f.locker.On("Unlock", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), lockKey, "lock-1").Return(nil).Once()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Run(func(args mock.Arguments) {
		cancel()
	}).Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, "Cleaning", "2024-05-01", "a@x.com").
		Return(int64(0), exceptions.ErrMongoDBFindDocument(context.Canceled))

	_, err := f.usecase().Admit(ctx, cleaningRequest())

	assert.Error(t, err)
	require.Error(t, ctx.Err())
	f.locker.AssertExpectations(t)
}

func TestAdmit_LockHeldIsConflict(t *testing.T) {
	f := newFixture()
	f.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "2024-05-01")
	f.bookings.AssertNotCalled(t, "CountActiveByTriple", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmit_LockStoreFailure(t *testing.T) {
	f := newFixture()
	f.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).
		Return(false, "", exceptions.ErrRedisSet(errors.New("connection refused")))

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	assert.Nil(t, result)
	assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
}

func TestAdmit_DuplicateKeyIsConflict(t *testing.T) {
	f := newFixture()
	f.lockAcquired()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.Anything).
		Return("", exceptions.ErrBookingDuplicateKey(errors.New("E11000 duplicate key error")))

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, "You already have a booking on 2024-05-01", result.Message)
	f.publisher.AssertNotCalled(t, "PublishBookingAdmitted", mock.Anything, mock.Anything)
}

func TestAdmit_InsertFailure(t *testing.T) {
	f := newFixture()
	f.lockAcquired()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.Anything).
		Return("", exceptions.ErrMongoDBInsertDocument(errors.New("timeout")))

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	assert.Nil(t, result)
	assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	f.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "lock-1")
}

func TestAdmit_SlotValidity(t *testing.T) {
	t.Run("unknown treatment", func(t *testing.T) {
		f := newFixture()
		f.lockAcquired()
		f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(nil, nil)

		_, err := f.usecase().Admit(context.Background(), cleaningRequest())

		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("slot not offered", func(t *testing.T) {
		f := newFixture()
		f.lockAcquired()
		f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
		req := cleaningRequest()
		req.Slot = "7:30"

		_, err := f.usecase().Admit(context.Background(), req)

		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("check disabled", func(t *testing.T) {
		f := newFixture()
		f.cfg.Booking.EnforceSlotValidity = false
		f.lockAcquired()
		f.bookings.On("CountActiveByTriple", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
		f.bookings.On("CreateBooking", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)
		f.publisher.On("PublishBookingAdmitted", mock.Anything, mock.Anything).Return(nil).Maybe()
		req := cleaningRequest()
		req.Slot = "7:30"

		result, err := f.usecase().Admit(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		f.treatments.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestAdmit_AttemptQuota(t *testing.T) {
	f := newFixture()
	f.cfg.Booking.MaxAttemptsPerMinute = 3
	f.limiter.On("Allow", mock.Anything, "booking", "a@x.com", time.Minute, 3).Return(false, 20*time.Second, nil)

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	assert.Nil(t, result)
	assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCodeOf(err))
	f.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmit_PublisherFailureDoesNotAffectResult(t *testing.T) {
	f := newFixture()
	f.lockAcquired()
	f.treatments.On("FindByName", mock.Anything, "Cleaning").Return(cleaning(), nil)
	f.bookings.On("CountActiveByTriple", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil)

	done := make(chan struct{})
	f.publisher.On("PublishBookingAdmitted", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(done)
	}).Return(errors.New("broker down"))

	result, err := f.usecase().Admit(context.Background(), cleaningRequest())

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher was not invoked")
	}
}

// memoryStore stands in for Redis and Mongo to exercise the admission
// sequence end to end.
type memoryStore struct {
	mu       sync.Mutex
	locks    map[string]string
	bookings []models.Booking
}

func newMemoryStore() *memoryStore {
	return &memoryStore{locks: map[string]string{}}
}

func (s *memoryStore) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, held := s.locks[key]; held {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	s.locks[key] = value
	return true, value, nil
}

func (s *memoryStore) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] == lockValue {
		delete(s.locks, key)
	}
	return nil
}

type memoryBookingRepository struct {
	MockBookingRepository
	store *memoryStore
}

func (r *memoryBookingRepository) CountActiveByTriple(ctx context.Context, treatment, date, email string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, b := range r.store.bookings {
		if b.Treatment == treatment && b.AppointmentDate == date && b.Email == email && !b.Cancelled {
			n++
		}
	}
	return n, nil
}

func (r *memoryBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	// widen the check then insert window
	time.Sleep(time.Millisecond)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	r.store.bookings = append(r.store.bookings, *booking)
	return booking.ID.Hex(), nil
}

func newMemoryUsecase(store *memoryStore) *bookingUsecase {
	cfg := testConfig()
	cfg.Booking.EnforceSlotValidity = false
	repo := &memoryBookingRepository{store: store}
	return NewBookingUsecase(repo, nil, store, nil, nil, cfg, zap.NewNop()).(*bookingUsecase)
}

func TestAdmit_RepeatedRequestIsRejected(t *testing.T) {
	store := newMemoryStore()
	uc := newMemoryUsecase(store)

	first, err := uc.Admit(context.Background(), cleaningRequest())
	require.NoError(t, err)
	assert.True(t, first.Accepted)

	second, err := uc.Admit(context.Background(), cleaningRequest())
	require.NoError(t, err)
	assert.False(t, second.Accepted)
	assert.Contains(t, second.Message, "2024-05-01")
	assert.Len(t, store.bookings, 1)
}

func TestAdmit_ConcurrentSameTripleAdmitsOnce(t *testing.T) {
	store := newMemoryStore()
	uc := newMemoryUsecase(store)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := uc.Admit(context.Background(), cleaningRequest())
			if err == nil && result.Accepted {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Len(t, store.bookings, 1)
}

func TestAdmit_DifferentTreatmentsSameDayBothAccepted(t *testing.T) {
	store := newMemoryStore()
	uc := newMemoryUsecase(store)

	for _, treatment := range []string{"Cleaning", "Whitening"} {
		req := cleaningRequest()
		req.Treatment = treatment
		result, err := uc.Admit(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, result.Accepted, treatment)
	}
	assert.Len(t, store.bookings, 2)
}

func TestFindByID(t *testing.T) {
	f := newFixture()
	id := primitive.NewObjectID()
	f.bookings.On("FindByID", mock.Anything, id.Hex()).Return(&models.Booking{ID: id}, nil)
	f.bookings.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	booking, err := f.usecase().FindByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, booking.ID)

	_, err = f.usecase().FindByID(context.Background(), "missing")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestCancel(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	tests := []struct {
		name       string
		booking    *models.Booking
		modified   int64
		email      string
		wantStatus int
	}{
		{"owner cancels", &models.Booking{Email: "a@x.com"}, 1, "a@x.com", 0},
		{"not owner", &models.Booking{Email: "b@x.com"}, 0, "a@x.com", constvars.StatusForbidden},
		{"already cancelled", &models.Booking{Email: "a@x.com", Cancelled: true}, 0, "a@x.com", constvars.StatusConflict},
		{"paid", &models.Booking{Email: "a@x.com", Paid: true}, 0, "a@x.com", constvars.StatusConflict},
		{"lost race", &models.Booking{Email: "a@x.com"}, 0, "a@x.com", constvars.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.bookings.On("FindByID", mock.Anything, id).Return(tt.booking, nil)
			f.bookings.On("Cancel", mock.Anything, id).Return(tt.modified, nil)

			err := f.usecase().Cancel(context.Background(), &requests.CancelBooking{BookingID: id, Email: tt.email})

			if tt.wantStatus == 0 {
				require.NoError(t, err)
				f.bookings.AssertCalled(t, "Cancel", mock.Anything, id)
				return
			}
			assert.Equal(t, tt.wantStatus, exceptions.StatusCodeOf(err), fmt.Sprint(err))
		})
	}
}
