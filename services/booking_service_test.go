package services_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"hillbook/dto"
	"hillbook/errors"
	"hillbook/models"
	"hillbook/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRoomLookup là RoomLookup chạy trong bộ nhớ cho test
type memRoomLookup struct {
	mu     sync.Mutex
	rooms  map[uint]models.Room
	booked map[uint]bool
}

func newMemRoomLookup(rooms ...models.Room) *memRoomLookup {
	m := &memRoomLookup{
		rooms:  make(map[uint]models.Room),
		booked: make(map[uint]bool),
	}
	for _, room := range rooms {
		m.rooms[room.RoomId] = room
	}
	return m
}

func (m *memRoomLookup) FindRoomByID(id uint) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (m *memRoomLookup) SetRoomBooked(id uint, booked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.booked[id] = booked
	return nil
}

// memBookingStore là BookingStore chạy trong bộ nhớ cho test, mô phỏng
// unique index trên confirmation_code
type memBookingStore struct {
	mu             sync.Mutex
	nextID         uint
	bookings       map[uint]models.Booking
	codes          map[string]bool
	inserts        int
	failDuplicates int // số lần Insert đầu tiên giả vờ trùng mã
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{
		bookings: make(map[uint]models.Booking),
		codes:    make(map[string]bool),
	}
}

func (s *memBookingStore) FindAcceptedByRoom(roomID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Status == models.BookingStatusAccepted {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memBookingStore) Insert(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inserts++
	if s.failDuplicates > 0 {
		s.failDuplicates--
		return errors.ErrDuplicateCode
	}
	if s.codes[booking.ConfirmationCode] {
		return errors.ErrDuplicateCode
	}

	s.nextID++
	booking.ID = s.nextID
	s.codes[booking.ConfirmationCode] = true
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memBookingStore) FindByID(id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *memBookingStore) FindByConfirmationCode(code string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ConfirmationCode == code {
			result := b
			return &result, nil
		}
	}
	return nil, nil
}

func (s *memBookingStore) FindByGuestEmail(email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.GuestEmail == email {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memBookingStore) FindByRoom(roomID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memBookingStore) FindAll() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (s *memBookingStore) UpdateStatus(id uint, status int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil
	}
	b.Status = status
	s.bookings[id] = b
	return nil
}

func (s *memBookingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func newTestService(store *memBookingStore) (*services.BookingService, *memRoomLookup) {
	rooms := newMemRoomLookup(models.Room{RoomId: 1, RoomType: "Deluxe", Price: 500})
	svc := services.NewBookingService(services.BookingServiceOptions{
		Rooms:       rooms,
		Store:       store,
		LockTimeout: 2 * time.Second,
	})
	return svc, rooms
}

func bookingReq(roomID uint, checkIn, checkOut string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		RoomID:       roomID,
		GuestName:    "Nguyen Van A",
		GuestEmail:   "guest@example.com",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumAdults:    2,
		NumChildren:  1,
	}
}

func TestAdmitSuccess(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	booking, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Len(t, booking.ConfirmationCode, 8)
	assert.Equal(t, models.BookingStatusAccepted, booking.Status)
	assert.Equal(t, 3, booking.TotalGuests)
	assert.Equal(t, 1, store.count())
}

func TestAdmitOverlapScenario(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	// phòng trống: nhận
	first, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)
	assert.Len(t, first.ConfirmationCode, 8)

	// đè lên ngày 11: từ chối
	_, err = svc.Admit(bookingReq(1, "2030-03-11", "2030-03-13"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRoomUnavailable))
	assert.Equal(t, 1, store.count())

	// nối lưng từ ngày 12: nhận
	third, err := svc.Admit(bookingReq(1, "2030-03-12", "2030-03-14"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ConfirmationCode, third.ConfirmationCode)
	assert.Equal(t, 2, store.count())
}

func TestAdmitInvalidRange(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	// check-in trùng check-out
	_, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-10"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))

	// check-in sau check-out
	_, err = svc.Admit(bookingReq(1, "2030-03-12", "2030-03-10"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))

	// đường từ chối không được ghi gì xuống store
	assert.Equal(t, 0, store.count())
}

func TestAdmitPastCheckIn(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	_, err := svc.Admit(bookingReq(1, "2020-03-10", "2020-03-12"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePastCheckIn))
	assert.Equal(t, 0, store.count())
}

func TestAdmitRoomNotFound(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	_, err := svc.Admit(bookingReq(99, "2030-03-10", "2030-03-12"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRoomNotFound))
	assert.Equal(t, 0, store.count())
}

func TestAdmitKeepsProvidedCode(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	req := bookingReq(1, "2030-03-10", "2030-03-12")
	req.ConfirmationCode = "MYCODE12"

	booking, err := svc.Admit(req)
	require.NoError(t, err)
	assert.Equal(t, "MYCODE12", booking.ConfirmationCode)
}

func TestAdmitCodeCollisionRetry(t *testing.T) {
	store := newMemBookingStore()
	store.failDuplicates = 2
	svc, _ := newTestService(store)

	booking, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)
	assert.Len(t, booking.ConfirmationCode, 8)
	assert.Equal(t, 3, store.inserts)
}

func TestAdmitCodeGenerationExhausted(t *testing.T) {
	store := newMemBookingStore()
	store.failDuplicates = 3
	svc, _ := newTestService(store)

	_, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCodeExhausted))
	assert.Equal(t, 0, store.count())
}

func TestCancelThenRebook(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	booking, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)

	// cùng khoảng ngày khi chưa hủy: từ chối
	_, err = svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRoomUnavailable))

	require.NoError(t, svc.Cancel(booking.ID))

	// hủy xong thì đặt lại đúng khoảng ngày đó được
	rebooked, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)
	assert.NotEqual(t, booking.ID, rebooked.ID)
}

func TestCancelIdempotent(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	booking, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(booking.ID))
	// hủy lần hai và hủy booking không tồn tại đều là no-op
	require.NoError(t, svc.Cancel(booking.ID))
	require.NoError(t, svc.Cancel(9999))
}

func TestConcurrentDistinctNights(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	base := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errCh := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(night int) {
			defer wg.Done()
			checkIn := base.AddDate(0, 0, night).Format(models.DateFormat)
			checkOut := base.AddDate(0, 0, night+1).Format(models.DateFormat)
			if _, err := svc.Admit(bookingReq(1, checkIn, checkOut)); err != nil {
				errCh <- fmt.Errorf("đêm %d: %w", night, err)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("admission thất bại: %v", err)
	}

	bookings, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, bookings, 50)

	// không được có hai booking giao nhau và không được trùng mã
	codes := make(map[string]bool)
	for i, a := range bookings {
		assert.False(t, codes[a.ConfirmationCode], "trùng mã %s", a.ConfirmationCode)
		codes[a.ConfirmationCode] = true
		for j, b := range bookings {
			if i != j {
				assert.False(t, a.Range().Overlaps(b.Range()),
					"booking %d và %d giao nhau", a.ID, b.ID)
			}
		}
	}
}

func TestConcurrentIdenticalRange(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	unavailable := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.HasCode(err, errors.ErrCodeRoomUnavailable) {
				unavailable++
			}
		}()
	}
	wg.Wait()

	// đúng một lượt thắng, chín lượt còn lại bị từ chối vì kín lịch
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 9, unavailable)
	assert.Equal(t, 1, store.count())
}

func TestGetByConfirmationCode(t *testing.T) {
	store := newMemBookingStore()
	svc, _ := newTestService(store)

	booking, err := svc.Admit(bookingReq(1, "2030-03-10", "2030-03-12"))
	require.NoError(t, err)

	found, err := svc.GetByConfirmationCode(booking.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)

	_, err = svc.GetByConfirmationCode("KHONGCO1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBookingNotFound))
}

func TestBookedFlagFollowsCalendar(t *testing.T) {
	store := newMemBookingStore()
	svc, rooms := newTestService(store)

	// khách đang ở từ hôm nay: cờ bật
	checkIn := time.Now().UTC().Format(models.DateFormat)
	checkOut := time.Now().UTC().AddDate(0, 0, 2).Format(models.DateFormat)
	booking, err := svc.Admit(bookingReq(1, checkIn, checkOut))
	require.NoError(t, err)

	rooms.mu.Lock()
	assert.True(t, rooms.booked[1])
	rooms.mu.Unlock()

	// hủy thì cờ hạ
	require.NoError(t, svc.Cancel(booking.ID))
	rooms.mu.Lock()
	assert.False(t, rooms.booked[1])
	rooms.mu.Unlock()
}
