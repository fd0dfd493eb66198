package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0 // chỉ tồn tại trong request, không bao giờ lưu DB
	BookingStatusAccepted  = 1
	BookingStatusCancelled = 2
	BookingStatusCompleted = 3
)

type Booking struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	RoomID           uint      `json:"roomId" gorm:"index"`
	Room             *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestName        string    `json:"guestName"`
	GuestEmail       string    `json:"guestEmail" gorm:"index"`
	CheckInDate      time.Time `json:"checkInDate" gorm:"type:date"`
	CheckOutDate     time.Time `json:"checkOutDate" gorm:"type:date"`
	NumAdults        int       `json:"numAdults"`
	NumChildren      int       `json:"numChildren"`
	TotalGuests      int       `json:"totalGuests"` // luôn = NumAdults + NumChildren
	ConfirmationCode string    `json:"confirmationCode" gorm:"uniqueIndex;size:8"`
	Status           int       `json:"status" gorm:"index"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Range trả về khoảng ngày của booking
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

// IsAccepted booking còn được tính vào lịch phòng hay không
func (b *Booking) IsAccepted() bool {
	return b.Status == BookingStatusAccepted
}
