package models_test

import (
	"testing"
	"time"

	"hillbook/errors"
	"hillbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, checkIn, checkOut time.Time) models.DateRange {
	t.Helper()
	r, err := models.NewDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	r, err := models.NewDateRange(date(2025, 3, 10), date(2025, 3, 12))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())

	// check-in trùng check-out là không hợp lệ
	_, err = models.NewDateRange(date(2025, 3, 10), date(2025, 3, 10))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))

	// check-in sau check-out là không hợp lệ
	_, err = models.NewDateRange(date(2025, 3, 12), date(2025, 3, 10))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
}

func TestParseDateRange(t *testing.T) {
	r, err := models.ParseDateRange("2025-03-10", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 10), r.CheckIn)
	assert.Equal(t, date(2025, 3, 12), r.CheckOut)

	_, err = models.ParseDateRange("10/03/2025", "2025-03-12")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = models.ParseDateRange("2025-03-12", "2025-03-10")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
}

func TestOverlaps(t *testing.T) {
	a := mustRange(t, date(2025, 3, 10), date(2025, 3, 12))

	// giao nhau một ngày
	b := mustRange(t, date(2025, 3, 11), date(2025, 3, 13))
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	// khoảng chứa trọn khoảng kia
	c := mustRange(t, date(2025, 3, 9), date(2025, 3, 15))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(a))

	// nối lưng nhau: trả phòng đúng ngày nhận phòng thì không giao
	d := mustRange(t, date(2025, 3, 12), date(2025, 3, 14))
	assert.False(t, a.Overlaps(d))
	assert.False(t, d.Overlaps(a))

	// tách hẳn nhau
	e := mustRange(t, date(2025, 3, 20), date(2025, 3, 22))
	assert.False(t, a.Overlaps(e))
	assert.False(t, e.Overlaps(a))
}

func TestContains(t *testing.T) {
	r := mustRange(t, date(2025, 3, 10), date(2025, 3, 12))

	assert.True(t, r.Contains(date(2025, 3, 10)))
	assert.True(t, r.Contains(date(2025, 3, 11)))
	// ngày trả phòng không tính là đang ở
	assert.False(t, r.Contains(date(2025, 3, 12)))
	assert.False(t, r.Contains(date(2025, 3, 9)))
}
