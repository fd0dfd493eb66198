package services

import (
	"hillbook/models"
)

// IsAvailable kiểm tra khoảng ngày candidate có trống so với các booking
// đã nhận của phòng không. Hàm thuần, không chạm DB.
func IsAvailable(candidate models.DateRange, existing []models.DateRange) bool {
	for _, booked := range existing {
		if candidate.Overlaps(booked) {
			return false
		}
	}
	return true
}

// AcceptedRanges lọc ra khoảng ngày của các booking còn được tính vào lịch phòng
func AcceptedRanges(bookings []models.Booking) []models.DateRange {
	ranges := make([]models.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if b.IsAccepted() {
			ranges = append(ranges, b.Range())
		}
	}
	return ranges
}
