package dto

// CreateHospitalRequest là DTO cho request tạo bệnh viện
type CreateHospitalRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Photo   string `json:"photo"` // base64, upload lên Cloudinary
}

// HospitalResponse là DTO cho response của bệnh viện
type HospitalResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Photo    string `json:"photo"`
	NumRooms int    `json:"numRooms"`
}

// ScoredHospital là bệnh viện kèm điểm phù hợp khi tìm kiếm
type ScoredHospital struct {
	Hospital HospitalResponse `json:"hospital"`
	Score    int              `json:"score"`
}
