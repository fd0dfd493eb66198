package validator

import (
	"regexp"
	"time"

	"hillbook/dto"
	"hillbook/errors"
	"hillbook/models"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

// ValidateStruct chạy các rule binding tag trên struct
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateBookingRequest kiểm tra request đặt phòng, trả về khoảng ngày đã parse.
// Không chạm DB, lỗi trả về ngay trước khi vào cửa sổ nhận phòng.
func ValidateBookingRequest(req *dto.CreateBookingRequest, now time.Time) (models.DateRange, error) {
	if err := ValidateStruct(req); err != nil {
		return models.DateRange{}, err
	}

	dateRange, err := models.ParseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return models.DateRange{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateRange.CheckIn.Before(today) {
		return models.DateRange{}, errors.NewAppError(errors.ErrCodePastCheckIn,
			"Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	if len(req.ConfirmationCode) > 8 {
		return models.DateRange{}, errors.NewAppError(errors.ErrCodeValidation,
			"Mã xác nhận không được quá 8 ký tự", nil)
	}

	return dateRange, nil
}

// ValidateHospital validate thông tin bệnh viện
func ValidateHospital(hospital *models.Hospital) error {
	if hospital.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên bệnh viện không được để trống", nil)
	}
	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.HospitalID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID bệnh viện không được để trống", nil)
	}
	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
