package controllers

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"hillbook/config"
	"hillbook/dto"
	"hillbook/models"
	"hillbook/response"
	"hillbook/services"
	"hillbook/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func convertToHospitalResponse(hospital models.Hospital) dto.HospitalResponse {
	return dto.HospitalResponse{
		ID:       hospital.ID,
		Name:     hospital.Name,
		Address:  hospital.Address,
		Photo:    hospital.Photo,
		NumRooms: len(hospital.Rooms),
	}
}

// GetAllHospitals liệt kê bệnh viện
func GetAllHospitals(c *gin.Context) {
	var hospitals []models.Hospital
	if err := config.DB.Preload("Rooms").Find(&hospitals).Error; err != nil {
		response.ServerError(c)
		return
	}

	hospitalResponses := make([]dto.HospitalResponse, 0, len(hospitals))
	for _, hospital := range hospitals {
		hospitalResponses = append(hospitalResponses, convertToHospitalResponse(hospital))
	}

	response.Success(c, hospitalResponses)
}

// GetHospitalDetail chi tiết một bệnh viện kèm danh sách phòng
func GetHospitalDetail(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID bệnh viện không hợp lệ")
		return
	}

	var hospital models.Hospital
	if err := config.DB.Preload("Rooms.Images").First(&hospital, hospitalID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy bệnh viện")
		return
	}

	response.Success(c, hospital)
}

// CreateHospital tạo bệnh viện mới
func CreateHospital(c *gin.Context) {
	var request dto.CreateHospitalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	hospital := models.Hospital{
		Name:    request.Name,
		Address: request.Address,
	}

	if err := validator.ValidateHospital(&hospital); err != nil {
		respondBookingError(c, err)
		return
	}

	if request.Photo != "" {
		url, err := services.UploadBase64Image(context.Background(), request.Photo, "hospitals")
		if err != nil {
			response.BadRequest(c, "Upload ảnh thất bại")
			return
		}
		hospital.Photo = url
	}

	if err := config.DB.Create(&hospital).Error; err != nil {
		response.Conflict(c, "Tên bệnh viện đã tồn tại")
		return
	}

	response.Success(c, convertToHospitalResponse(hospital))
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tính điểm phù hợp của bệnh viện với query
func calculateHospitalScore(query string, hospital models.Hospital, cmName *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := normalizeInput(hospital.Name)
	if cmName.Closest(query) == normalizedName {
		score += 20
	}

	similarity := calculateSimilarity(query, normalizedName)
	if similarity > 0.7 || strings.Contains(normalizedName, query) {
		score += 15
	}

	if hospital.Address != "" && strings.Contains(normalizeInput(hospital.Address), query) {
		score += 5
	}

	return score
}

// SearchHospitals tìm bệnh viện theo tên gần đúng (bỏ dấu, chịu lỗi chính tả)
func SearchHospitals(c *gin.Context) {
	query := normalizeInput(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	var hospitals []models.Hospital
	if err := config.DB.Preload("Rooms").Find(&hospitals).Error; err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(hospitals))
	for _, hospital := range hospitals {
		names = append(names, normalizeInput(hospital.Name))
	}
	cmName := createMatcher(names)

	var scored []dto.ScoredHospital
	for _, hospital := range hospitals {
		score := calculateHospitalScore(query, hospital, cmName)
		if score > 0 {
			scored = append(scored, dto.ScoredHospital{
				Hospital: convertToHospitalResponse(hospital),
				Score:    score,
			})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	response.Success(c, scored)
}
