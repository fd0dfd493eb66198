package routes

import (
	"hillbook/constants"
	"hillbook/controllers"
	middlewares "hillbook/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	bookingController := controllers.NewBookingController(db, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/hospitals", controllers.GetAllHospitals)
	v1.GET("/hospitals/:id", controllers.GetHospitalDetail)
	v1.POST("/hospitals", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateHospital)
	v1.GET("/hospitalSearch", controllers.SearchHospitals)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/types", controllers.GetRoomTypes)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.POST("/img/room-upload", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UploadRoomPhotos)
	v1.GET("/checkRoom", bookingController.GetRoomBookingDates)

	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings",
		middlewares.AuthMiddleware(constants.RoleReceptionist, constants.RoleAdmin),
		bookingController.GetBookings)
	v1.GET("/bookings/confirmation/:code", bookingController.GetBookingByConfirmationCode)
	v1.GET("/bookings/user/:email", bookingController.GetBookingsByUserEmail)
	v1.DELETE("/bookings/:id",
		middlewares.AuthMiddleware(constants.RoleUser, constants.RoleReceptionist, constants.RoleAdmin),
		bookingController.CancelBooking)
}
