package services_test

import (
	"testing"
	"time"

	"hillbook/models"
	"hillbook/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makeRange(t *testing.T, checkIn, checkOut time.Time) models.DateRange {
	t.Helper()
	r, err := models.NewDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func TestIsAvailableEmpty(t *testing.T) {
	candidate := makeRange(t, date(2025, 3, 10), date(2025, 3, 12))

	assert.True(t, services.IsAvailable(candidate, nil))
	assert.True(t, services.IsAvailable(candidate, []models.DateRange{}))
}

func TestIsAvailableOverlap(t *testing.T) {
	existing := []models.DateRange{
		makeRange(t, date(2025, 3, 10), date(2025, 3, 12)),
		makeRange(t, date(2025, 3, 20), date(2025, 3, 25)),
	}

	// giao với booking đầu
	assert.False(t, services.IsAvailable(makeRange(t, date(2025, 3, 11), date(2025, 3, 13)), existing))
	// giao với booking sau
	assert.False(t, services.IsAvailable(makeRange(t, date(2025, 3, 24), date(2025, 3, 26)), existing))
	// nằm lọt khe giữa hai booking
	assert.True(t, services.IsAvailable(makeRange(t, date(2025, 3, 12), date(2025, 3, 20)), existing))
}

func TestIsAvailableBackToBack(t *testing.T) {
	existing := []models.DateRange{
		makeRange(t, date(2025, 3, 10), date(2025, 3, 12)),
	}

	// nhận phòng đúng ngày khách cũ trả là hợp lệ
	assert.True(t, services.IsAvailable(makeRange(t, date(2025, 3, 12), date(2025, 3, 14)), existing))
	// trả phòng đúng ngày khách cũ nhận cũng hợp lệ
	assert.True(t, services.IsAvailable(makeRange(t, date(2025, 3, 8), date(2025, 3, 10)), existing))
}

func TestAcceptedRanges(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: date(2025, 3, 10), CheckOutDate: date(2025, 3, 12), Status: models.BookingStatusAccepted},
		{CheckInDate: date(2025, 3, 12), CheckOutDate: date(2025, 3, 14), Status: models.BookingStatusCancelled},
		{CheckInDate: date(2025, 3, 14), CheckOutDate: date(2025, 3, 16), Status: models.BookingStatusCompleted},
	}

	ranges := services.AcceptedRanges(bookings)
	require.Len(t, ranges, 1)
	assert.Equal(t, date(2025, 3, 10), ranges[0].CheckIn)
}
