package dto

// CreateRoomRequest là DTO cho request tạo phòng (ảnh gửi dạng base64)
type CreateRoomRequest struct {
	HospitalID  uint     `json:"hospitalId" binding:"required"`
	RoomType    string   `json:"roomType" binding:"required"`
	Price       int      `json:"price" binding:"min=0"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"` // base64, upload lên Cloudinary
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	RoomType    string `json:"roomType"`
	Price       *int   `json:"price"`
	Description string `json:"description"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint     `json:"id"`
	HospitalID  uint     `json:"hospitalId"`
	RoomType    string   `json:"roomType"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	IsBooked    bool     `json:"isBooked"`
	Avatar      string   `json:"avatar"`
	Images      []string `json:"images"`
}
