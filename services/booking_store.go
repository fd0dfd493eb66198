package services

import (
	goerrors "errors"

	"hillbook/errors"
	"hillbook/models"

	"gorm.io/gorm"
)

// RoomLookup là cổng đọc phòng của booking service
type RoomLookup interface {
	// FindRoomByID trả về (nil, nil) nếu phòng không tồn tại
	FindRoomByID(id uint) (*models.Room, error)
	SetRoomBooked(id uint, booked bool) error
}

// BookingStore là cổng lưu trữ booking của booking service
type BookingStore interface {
	FindAcceptedByRoom(roomID uint) ([]models.Booking, error)
	// Insert trả về errors.ErrDuplicateCode nếu trùng mã xác nhận
	Insert(booking *models.Booking) error
	FindByID(id uint) (*models.Booking, error)
	FindByConfirmationCode(code string) (*models.Booking, error)
	FindByGuestEmail(email string) ([]models.Booking, error)
	FindByRoom(roomID uint) ([]models.Booking, error)
	FindAll() ([]models.Booking, error)
	UpdateStatus(id uint, status int) error
}

// GormRoomLookup đọc phòng từ Postgres qua GORM
type GormRoomLookup struct {
	db *gorm.DB
}

func NewGormRoomLookup(db *gorm.DB) *GormRoomLookup {
	return &GormRoomLookup{db: db}
}

func (r *GormRoomLookup) FindRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomLookup) SetRoomBooked(id uint, booked bool) error {
	return r.db.Model(&models.Room{}).Where("room_id = ?", id).
		Update("is_booked", booked).Error
}

// GormBookingStore lưu booking vào Postgres qua GORM
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) FindAcceptedByRoom(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("room_id = ? AND status = ?", roomID, models.BookingStatusAccepted).
		Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) Insert(booking *models.Booking) error {
	if err := s.db.Create(booking).Error; err != nil {
		// unique index duy nhất trên bookings là confirmation_code
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (s *GormBookingStore) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) FindByConfirmationCode(code string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Room").Where("confirmation_code = ?", code).First(&booking).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) FindByGuestEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Room").Where("guest_email = ?", email).Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) FindByRoom(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("room_id = ?", roomID).Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Room").Order("updated_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) UpdateStatus(id uint, status int) error {
	return s.db.Model(&models.Booking{}).Where("id = ?", id).
		Update("status", status).Error
}
