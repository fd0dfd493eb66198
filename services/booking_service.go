package services

import (
	goerrors "errors"
	"time"

	"hillbook/constants"
	"hillbook/dto"
	"hillbook/errors"
	"hillbook/models"
	"hillbook/services/logger"
	"hillbook/validator"

	"gorm.io/gorm"
)

// BookingService là nơi quyết định nhận hay từ chối một lượt đặt phòng.
// Mọi lượt đặt trên cùng một phòng được xếp hàng qua RoomLocker để
// chuỗi đọc lịch - kiểm tra trống - ghi booking là một khối nguyên tử.
type BookingService struct {
	rooms       RoomLookup
	store       BookingStore
	locks       *RoomLocker
	lockTimeout time.Duration
	logger      logger.Logger
}

// BookingServiceOptions là tham số khởi tạo BookingService
type BookingServiceOptions struct {
	Rooms       RoomLookup
	Store       BookingStore
	LockTimeout time.Duration
	Logger      logger.Logger
}

// NewBookingService tạo BookingService từ options
func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		rooms:       opts.Rooms,
		store:       opts.Store,
		locks:       NewRoomLocker(),
		lockTimeout: opts.LockTimeout,
		logger:      opts.Logger,
	}
}

// NewGormBookingService tạo BookingService chạy trên Postgres
func NewGormBookingService(db *gorm.DB, lockTimeout time.Duration) *BookingService {
	return NewBookingService(BookingServiceOptions{
		Rooms:       NewGormRoomLookup(db),
		Store:       NewGormBookingStore(db),
		LockTimeout: lockTimeout,
	})
}

// Admit xử lý một lượt đặt phòng: validate, tra phòng, giữ khóa phòng,
// kiểm tra lịch trống, gán mã xác nhận rồi lưu booking ở trạng thái ACCEPTED.
// Mọi đường từ chối đều không ghi gì xuống DB.
func (s *BookingService) Admit(req *dto.CreateBookingRequest) (*models.Booking, error) {
	dateRange, err := validator.ValidateBookingRequest(req, time.Now())
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindRoomByID(req.RoomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được thông tin phòng", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
	}

	if err := s.locks.Acquire(room.RoomId, s.lockTimeout); err != nil {
		return nil, err
	}
	defer s.locks.Release(room.RoomId)

	accepted, err := s.store.FindAcceptedByRoom(room.RoomId)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được lịch phòng", err)
	}

	if !IsAvailable(dateRange, AcceptedRanges(accepted)) {
		return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable,
			"Phòng đã kín lịch trong khoảng thời gian này", nil)
	}

	booking := &models.Booking{
		RoomID:       room.RoomId,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		CheckInDate:  dateRange.CheckIn,
		CheckOutDate: dateRange.CheckOut,
		NumAdults:    req.NumAdults,
		NumChildren:  req.NumChildren,
		TotalGuests:  req.NumAdults + req.NumChildren,
		Status:       models.BookingStatusAccepted,
	}

	code := req.ConfirmationCode
	for attempt := 0; attempt < constants.CodeGenerationMaxRetry; attempt++ {
		if code == "" {
			code = GenerateConfirmationCode()
		}
		booking.ConfirmationCode = code

		err = s.store.Insert(booking)
		if err == nil {
			s.refreshBookedFlag(room.RoomId)
			s.logger.Info("Đã nhận booking %d phòng %d, mã %s", booking.ID, room.RoomId, code)
			return booking, nil
		}

		if !goerrors.Is(err, errors.ErrDuplicateCode) {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được booking", err)
		}

		// trùng mã: bỏ mã cũ (kể cả mã client gửi lên), sinh mã mới rồi thử lại
		s.logger.Error("Trùng mã xác nhận %s, thử lại (%d)", code, attempt+1)
		code = ""
	}

	return nil, errors.NewAppError(errors.ErrCodeCodeExhausted,
		"Không sinh được mã xác nhận duy nhất", err)
}

// Cancel chuyển booking ACCEPTED sang CANCELLED. Idempotent: booking không
// tồn tại hoặc đã hủy thì coi như xong. Không cần khóa phòng vì hủy chỉ nới
// lịch, nhưng hiệu lực phải thấy được ngay với các lượt Admit sau đó.
func (s *BookingService) Cancel(bookingID uint) error {
	booking, err := s.store.FindByID(bookingID)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được booking", err)
	}
	if booking == nil || booking.Status == models.BookingStatusCancelled {
		return nil
	}

	if err := s.store.UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không hủy được booking", err)
	}

	s.refreshBookedFlag(booking.RoomID)
	s.logger.Info("Đã hủy booking %d phòng %d", bookingID, booking.RoomID)
	return nil
}

// GetByID tra booking theo ID, trả về (nil, nil) nếu không có
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	return s.store.FindByID(bookingID)
}

// GetByConfirmationCode tra booking theo mã xác nhận
func (s *BookingService) GetByConfirmationCode(code string) (*models.Booking, error) {
	booking, err := s.store.FindByConfirmationCode(code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được booking", err)
	}
	if booking == nil {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking với mã "+code, nil)
	}
	return booking, nil
}

// GetByGuestEmail liệt kê booking theo email khách
func (s *BookingService) GetByGuestEmail(email string) ([]models.Booking, error) {
	return s.store.FindByGuestEmail(email)
}

// GetByRoom liệt kê booking theo phòng
func (s *BookingService) GetByRoom(roomID uint) ([]models.Booking, error) {
	return s.store.FindByRoom(roomID)
}

// GetAll liệt kê toàn bộ booking
func (s *BookingService) GetAll() ([]models.Booking, error) {
	return s.store.FindAll()
}

// BookedDatesByRoom trả về các khoảng ngày đã kín lịch của một phòng
func (s *BookingService) BookedDatesByRoom(roomID uint) ([]dto.BookedDates, error) {
	accepted, err := s.store.FindAcceptedByRoom(roomID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được lịch phòng", err)
	}

	dates := make([]dto.BookedDates, 0, len(accepted))
	for _, b := range accepted {
		dates = append(dates, dto.BookedDates{
			Start: b.CheckInDate.Format(models.DateFormat),
			End:   b.CheckOutDate.Format(models.DateFormat),
		})
	}
	return dates, nil
}

// refreshBookedFlag cập nhật cờ hiển thị is_booked theo lịch hiện tại.
// Cờ chỉ phục vụ hiển thị nhanh, nguồn sự thật vẫn là bảng bookings.
func (s *BookingService) refreshBookedFlag(roomID uint) {
	accepted, err := s.store.FindAcceptedByRoom(roomID)
	if err != nil {
		s.logger.Error("Không đọc được lịch phòng %d để cập nhật cờ: %v", roomID, err)
		return
	}

	now := time.Now()
	booked := false
	for _, b := range accepted {
		if b.Range().Contains(now) {
			booked = true
			break
		}
	}

	if err := s.rooms.SetRoomBooked(roomID, booked); err != nil {
		s.logger.Error("Không cập nhật được cờ is_booked phòng %d: %v", roomID, err)
	}
}
