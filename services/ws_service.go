package services

import (
	"hillbook/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// BookingEvent là thông điệp websocket bắn cho dashboard khi lịch phòng đổi
type BookingEvent struct {
	Event            string `json:"event"` // "booking.accepted" | "booking.cancelled"
	BookingID        uint   `json:"bookingId"`
	RoomID           uint   `json:"roomId"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
}

// BroadcastBookingEvent bắn sự kiện booking qua websocket, lỗi chỉ ghi log phía caller
func BroadcastBookingEvent(m *melody.Melody, event string, booking *models.Booking) error {
	if m == nil || booking == nil {
		return nil
	}

	payload, err := json.Marshal(BookingEvent{
		Event:            event,
		BookingID:        booking.ID,
		RoomID:           booking.RoomID,
		ConfirmationCode: booking.ConfirmationCode,
		CheckInDate:      booking.CheckInDate.Format(models.DateFormat),
		CheckOutDate:     booking.CheckOutDate.Format(models.DateFormat),
	})
	if err != nil {
		return err
	}

	return m.Broadcast(payload)
}
