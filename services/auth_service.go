package services

import (
	"errors"
	"fmt"

	"hillbook/config"
	"hillbook/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByID(id uint) (models.User, error) {
	var user models.User
	result := config.DB.First(&user, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với ID %d", id)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// CreateUser tạo user mới, email phải chưa được sử dụng
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	existing, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
