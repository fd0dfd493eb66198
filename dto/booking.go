package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	RoomID           uint   `json:"roomId" binding:"required"`
	GuestName        string `json:"guestName" binding:"required"`
	GuestEmail       string `json:"guestEmail" binding:"required,email"`
	CheckInDate      string `json:"checkInDate" binding:"required"`
	CheckOutDate     string `json:"checkOutDate" binding:"required"`
	NumAdults        int    `json:"numAdults" binding:"min=0"`
	NumChildren      int    `json:"numChildren" binding:"min=0"`
	ConfirmationCode string `json:"confirmationCode,omitempty"` // để trống thì server tự sinh
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID               uint             `json:"id"`
	Room             BookingRoomInfo  `json:"room"`
	GuestName        string           `json:"guestName"`
	GuestEmail       string           `json:"guestEmail"`
	CheckInDate      string           `json:"checkInDate"`
	CheckOutDate     string           `json:"checkOutDate"`
	NumAdults        int              `json:"numAdults"`
	NumChildren      int              `json:"numChildren"`
	TotalGuests      int              `json:"totalGuests"`
	ConfirmationCode string           `json:"confirmationCode"`
	Status           int              `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// BookingRoomInfo là thông tin phòng rút gọn trong response booking
type BookingRoomInfo struct {
	ID       uint   `json:"id"`
	RoomType string `json:"roomType"`
	Price    int    `json:"price"`
}

// AdmitResult là DTO trả về khi đặt phòng thành công
type AdmitResult struct {
	BookingID        uint   `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// BookedDates là khoảng ngày đã kín lịch của một phòng
type BookedDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
