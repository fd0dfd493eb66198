package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDSN() string {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error

	DB, err = gorm.Open(postgres.Open(getDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}
