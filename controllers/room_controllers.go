package controllers

import (
	"context"
	"strconv"
	"time"

	"hillbook/config"
	"hillbook/dto"
	"hillbook/models"
	"hillbook/response"
	"hillbook/services"
	"hillbook/utils"
	"hillbook/validator"

	"github.com/gin-gonic/gin"
)

const roomsCacheKey = "rooms:all"

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	images := make([]string, 0, len(room.Images))
	for _, img := range room.Images {
		images = append(images, img.URL)
	}

	return dto.RoomResponse{
		ID:          room.RoomId,
		HospitalID:  room.HospitalID,
		RoomType:    room.RoomType,
		Price:       room.Price,
		Description: room.Description,
		IsBooked:    room.IsBooked,
		Avatar:      room.Avatar,
		Images:      images,
	}
}

// GetAllRooms liệt kê phòng, cache Redis 10 phút
func GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &rooms); err != nil || len(rooms) == 0 {
		if err := config.DB.Preload("Images").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	// Lọc theo bệnh viện và loại phòng nếu có
	hospitalFilter := c.Query("hospitalId")
	typeFilter := c.Query("roomType")

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if hospitalFilter != "" {
			hospitalID, err := strconv.ParseUint(hospitalFilter, 10, 64)
			if err == nil && room.HospitalID != uint(hospitalID) {
				continue
			}
		}
		if typeFilter != "" && room.RoomType != typeFilter {
			continue
		}
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

// GetRoomDetail chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Images").Preload("Hospital").First(&room, roomID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy phòng")
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// GetRoomTypes liệt kê các loại phòng đang có
func GetRoomTypes(c *gin.Context) {
	var types []string
	if err := config.DB.Model(&models.Room{}).Distinct().Pluck("room_type", &types).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, types)
}

// CreateRoom tạo phòng mới kèm ảnh base64 đẩy lên Cloudinary
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var hospital models.Hospital
	if err := config.DB.First(&hospital, request.HospitalID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy bệnh viện")
		return
	}

	room := models.Room{
		HospitalID:  request.HospitalID,
		RoomType:    request.RoomType,
		Price:       request.Price,
		Description: request.Description,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		respondBookingError(c, err)
		return
	}

	ctx := context.Background()
	urls := make([]string, 0, len(request.Photos))
	for _, photo := range request.Photos {
		url, err := services.UploadBase64Image(ctx, photo, "rooms")
		if err != nil {
			utils.LogError("Upload ảnh phòng thất bại: %v", err)
			response.BadRequest(c, "Upload ảnh thất bại")
			return
		}
		urls = append(urls, url)
	}

	if len(urls) > 0 {
		room.Avatar = urls[0]
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	for _, url := range urls {
		image := models.RoomImage{RoomID: room.RoomId, URL: url}
		if err := config.DB.Create(&image).Error; err != nil {
			response.ServerError(c)
			return
		}
		room.Images = append(room.Images, image)
	}

	invalidateRoomCache()

	response.Success(c, convertToRoomResponse(room))
}

// UploadRoomPhotos thêm ảnh multipart cho phòng có sẵn
func UploadRoomPhotos(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.PostForm("roomId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy phòng")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "Không có file")
		return
	}

	ctx := context.Background()
	var urls []string
	for _, file := range files {
		url, err := services.UploadMultipartImage(ctx, file, "rooms")
		if err != nil {
			response.ServerError(c)
			return
		}

		image := models.RoomImage{RoomID: room.RoomId, URL: url}
		if err := config.DB.Create(&image).Error; err != nil {
			response.ServerError(c)
			return
		}
		urls = append(urls, url)
	}

	invalidateRoomCache()

	response.Success(c, urls)
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy phòng")
		return
	}

	if request.RoomType != "" {
		room.RoomType = request.RoomType
	}
	if request.Price != nil {
		room.Price = *request.Price
	}
	if request.Description != "" {
		room.Description = request.Description
	}

	if err := validator.ValidateRoom(&room); err != nil {
		respondBookingError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()

	response.Success(c, convertToRoomResponse(room))
}

func invalidateRoomCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey)
}
