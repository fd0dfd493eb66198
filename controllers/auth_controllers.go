package controllers

import (
	"strings"

	"hillbook/dto"
	"hillbook/models"
	"hillbook/response"
	"hillbook/services"

	"github.com/gin-gonic/gin"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}
}

// RegisterUser đăng ký tài khoản mới
func RegisterUser(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.CreateUser(models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// Login đăng nhập, trả về access token
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.GetUserByEmail(request.Email)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if !services.CheckPassword(user.Password, request.Password) {
		response.Unauthorized(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, 3*24*60)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        convertToUserResponse(user),
	})
}

// GetProfile trả về thông tin user hiện tại từ token
func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	user, err := services.GetUserByID(userID)
	if err != nil {
		response.NotFound(c, "Không tìm thấy người dùng")
		return
	}

	response.Success(c, convertToUserResponse(user))
}
