package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// LockTimeout thời gian tối đa chờ khóa phòng khi nhận booking
func LockTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("LOCK_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 5
	}
	return time.Duration(seconds) * time.Second
}
