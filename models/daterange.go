package models

import (
	"time"

	"hillbook/errors"
)

// DateFormat là định dạng ngày dùng chung cho toàn bộ API (yyyy-mm-dd)
const DateFormat = "2006-01-02"

// DateRange là khoảng ngày [check-in, check-out) của một booking
type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewDateRange tạo DateRange mới, check-in phải trước check-out
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if !checkIn.Before(checkOut) {
		return DateRange{}, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"Ngày nhận phòng phải trước ngày trả phòng", nil)
	}

	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// ParseDateRange parse hai chuỗi ngày yyyy-mm-dd thành DateRange
func ParseDateRange(checkInStr, checkOutStr string) (DateRange, error) {
	checkIn, err := time.Parse(DateFormat, checkInStr)
	if err != nil {
		return DateRange{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(DateFormat, checkOutStr)
	if err != nil {
		return DateRange{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Ngày trả phòng không hợp lệ", err)
	}

	return NewDateRange(checkIn, checkOut)
}

// Overlaps kiểm tra hai khoảng ngày có giao nhau không.
// Khoảng ngày là nửa mở: trả phòng đúng ngày khoảng kia nhận phòng thì không giao.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Contains kiểm tra một ngày có nằm trong khoảng không (tính ngày nhận, không tính ngày trả)
func (r DateRange) Contains(day time.Time) bool {
	day = truncateToDate(day)
	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

// Nights số đêm của khoảng ngày
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
