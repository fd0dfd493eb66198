package jobs

import (
	"time"

	"hillbook/config"
	"hillbook/models"
	"hillbook/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: đóng các booking đã trả phòng
	// và hạ cờ is_booked của những phòng không còn khách hôm nay
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := CompleteFinishedBookings(m); err != nil {
			utils.LogError("Lỗi khi đóng các booking đã trả phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}

// CompleteFinishedBookings chuyển các booking ACCEPTED đã qua ngày trả phòng
// sang COMPLETED và cập nhật lại cờ hiển thị của phòng
func CompleteFinishedBookings(m *melody.Melody) error {
	db := config.DB
	today := time.Now().Format(models.DateFormat)

	result := db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date <= ?", models.BookingStatusAccepted, today).
		Update("status", models.BookingStatusCompleted)
	if result.Error != nil {
		return result.Error
	}

	// Hạ cờ is_booked của các phòng không còn booking phủ ngày hôm nay
	err := db.Model(&models.Room{}).
		Where("is_booked = ? AND room_id NOT IN (?)", true,
			db.Model(&models.Booking{}).Select("room_id").
				Where("status = ? AND check_in_date <= ? AND check_out_date > ?",
					models.BookingStatusAccepted, today, today)).
		Update("is_booked", false).Error
	if err != nil {
		return err
	}

	if result.RowsAffected > 0 && m != nil {
		utils.LogInfo("Đã đóng %d booking quá ngày trả phòng", result.RowsAffected)
		m.Broadcast([]byte("bookings.completed"))
	}

	return nil
}
