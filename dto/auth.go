package dto

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO trả về sau khi đăng nhập
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// UserResponse là DTO cho thông tin user
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}
