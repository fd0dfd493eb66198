package services

import (
	"time"

	"hillbook/config"
	"hillbook/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken phát hành access token HS256 chứa userid và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken xác thực chữ ký token và trả về thông tin user
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Thuật toán ký không hợp lệ", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	return claims.UserInfo, nil
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	userInfo, err := ParseToken(tokenString)
	if err != nil {
		return 0, 0, err
	}
	return userInfo.UserId, userInfo.Role, nil
}
