package services

import (
	"strings"

	"hillbook/constants"

	"github.com/google/uuid"
)

// GenerateConfirmationCode sinh mã xác nhận 8 ký tự in hoa cho booking.
// Mã để khách tra cứu, không phải token bảo mật; trùng mã được bắt bởi
// unique index và retry ở bước commit.
func GenerateConfirmationCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:constants.ConfirmationCodeLength])
}
