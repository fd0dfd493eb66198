package controllers

import (
	"sort"
	"strconv"
	"time"

	"hillbook/config"
	"hillbook/dto"
	"hillbook/errors"
	"hillbook/models"
	"hillbook/response"
	"hillbook/services"
	"hillbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const bookingsCacheKey = "bookings:all"

type BookingController struct {
	service *services.BookingService
	ws      *melody.Melody
}

func NewBookingController(db *gorm.DB, m *melody.Melody) *BookingController {
	return &BookingController{
		service: services.NewGormBookingService(db, config.LockTimeout()),
		ws:      m,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	roomInfo := dto.BookingRoomInfo{ID: booking.RoomID}
	if booking.Room != nil {
		roomInfo.RoomType = booking.Room.RoomType
		roomInfo.Price = booking.Room.Price
	}

	return dto.BookingResponse{
		ID:               booking.ID,
		Room:             roomInfo,
		GuestName:        booking.GuestName,
		GuestEmail:       booking.GuestEmail,
		CheckInDate:      booking.CheckInDate.Format(models.DateFormat),
		CheckOutDate:     booking.CheckOutDate.Format(models.DateFormat),
		NumAdults:        booking.NumAdults,
		NumChildren:      booking.NumChildren,
		TotalGuests:      booking.TotalGuests,
		ConfirmationCode: booking.ConfirmationCode,
		Status:           booking.Status,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

// respondBookingError map lỗi của booking service sang HTTP status
func respondBookingError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeInvalidDateRange, errors.ErrCodePastCheckIn,
		errors.ErrCodeValidation, errors.ErrCodeInvalidFormat, errors.ErrCodeRequiredField:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeRoomNotFound, errors.ErrCodeBookingNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeLockTimeout:
		response.Conflict(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

// CreateBooking nhận một lượt đặt phòng
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.service.Admit(&request)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	ctl.invalidateCaches()

	if err := services.BroadcastBookingEvent(ctl.ws, "booking.accepted", booking); err != nil {
		utils.LogError("Lỗi broadcast sự kiện booking: %v", err)
	}

	response.Success(c, dto.AdmitResult{
		BookingID:        booking.ID,
		ConfirmationCode: booking.ConfirmationCode,
	})
}

// CancelBooking hủy một booking, idempotent
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, lookupErr := ctl.service.GetByID(uint(bookingID))

	if err := ctl.service.Cancel(uint(bookingID)); err != nil {
		respondBookingError(c, err)
		return
	}

	ctl.invalidateCaches()

	if lookupErr == nil && booking != nil {
		if err := services.BroadcastBookingEvent(ctl.ws, "booking.cancelled", booking); err != nil {
			utils.LogError("Lỗi broadcast sự kiện hủy booking: %v", err)
		}
	}

	response.Success(c, nil)
}

// GetBookings liệt kê toàn bộ booking, cache Redis 10 phút
func (ctl *BookingController) GetBookings(c *gin.Context) {
	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		var dbErr error
		allBookings, dbErr = ctl.service.GetAll()
		if dbErr != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, bookingsCacheKey, allBookings, 10*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	// Lọc theo status nếu có
	statusFilter := c.Query("status")
	filtered := make([]models.Booking, 0, len(allBookings))
	for _, booking := range allBookings {
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatus {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	// Xếp theo update mới nhất
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	page := 0
	limit := 10
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for _, booking := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingByConfirmationCode tra booking theo mã xác nhận
func (ctl *BookingController) GetBookingByConfirmationCode(c *gin.Context) {
	code := c.Param("code")

	booking, err := ctl.service.GetByConfirmationCode(code)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookingsByUserEmail liệt kê booking theo email khách
func (ctl *BookingController) GetBookingsByUserEmail(c *gin.Context) {
	email := c.Param("email")

	bookings, err := ctl.service.GetByGuestEmail(email)
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

// GetRoomBookingDates trả về các khoảng ngày kín lịch của một phòng
func (ctl *BookingController) GetRoomBookingDates(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	dates, err := ctl.service.BookedDatesByRoom(uint(roomID))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, dates)
}

func (ctl *BookingController) invalidateCaches() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingsCacheKey)
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey)
}
