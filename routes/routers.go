package routes

import (
	"hotelbooking/controllers"
	middlewares "hotelbooking/middleware"

	_ "hotelbooking/docs"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	hotelController := controllers.NewHotelController(db, redisCli)
	bookingController := controllers.NewBookingController(db, redisCli, m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)

	authed := v1.Group("")
	authed.Use(middlewares.AuthMiddleware())

	authed.GET("/hotels", hotelController.GetHotels)
	authed.GET("/hotels/:id", hotelController.GetHotelDetail)
	authed.GET("/hotels/:id/rooms", hotelController.GetRooms)
	authed.GET("/hotels/:id/rooms/:roomId", hotelController.GetRoomDetail)

	authed.POST("/bookings", bookingController.CreateBooking)
	authed.GET("/bookings", bookingController.GetBookings)
	authed.GET("/bookings/:id", bookingController.GetBookingDetail)
	authed.DELETE("/bookings", bookingController.DeleteBooking)

	authed.POST("/img/upload", controllers.UploadImage)
}
