package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"hotelbooking/config"
	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/middleware"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
	"hotelbooking/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	db      *gorm.DB
	rdb     *redis.Client
	melody  *melody.Melody
	service *services.BookingService
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *BookingController {
	return &BookingController{
		db:     db,
		rdb:    rdb,
		melody: m,
		service: services.NewBookingService(services.BookingServiceOptions{
			DB: db,
		}),
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:     booking.ID,
		UserID: booking.UserID,
		Room: dto.BookingRoomResponse{
			ID:         booking.Room.ID,
			HotelID:    booking.Room.HotelID,
			RoomNumber: booking.Room.RoomNumber,
			Type:       booking.Room.Type,
			Price:      booking.Room.Price,
			Capacity:   booking.Room.Capacity,
			ImageURL:   booking.Room.ImageURL,
			Hotel: dto.BookingHotelResponse{
				ID:       booking.Room.Hotel.ID,
				Name:     booking.Room.Hotel.Name,
				City:     booking.Room.Hotel.City,
				Country:  booking.Room.Hotel.Country,
				Address:  booking.Room.Hotel.Address,
				ImageURL: booking.Room.Hotel.ImageURL,
			},
		},
		CheckIn:    booking.CheckIn.Format(constants.DateLayout),
		CheckOut:   booking.CheckOut.Format(constants.DateLayout),
		Nights:     booking.Nights(),
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func (ctrl *BookingController) cacheKey(userID uint) string {
	return fmt.Sprintf("bookings:user:%d", userID)
}

func (ctrl *BookingController) invalidateCache(userID uint) {
	if ctrl.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, ctrl.cacheKey(userID)); err != nil {
		log.Printf("Lỗi khi xóa cache booking của user %d: %v", userID, err)
	}
}

// CreateBooking godoc
// @Summary Đặt phòng
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Thông tin đặt phòng"
// @Success 200 {object} dto.BookingResponse
// @Router /bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	checkIn, err := validator.ParseBookingDate(request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return
	}
	checkOut, err := validator.ParseBookingDate(request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return
	}

	booking, err := ctrl.service.Create(userID, request.RoomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.BadRequest(c, "Check-out date must be after check-in date")
		case errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFound(c, "Room not found")
		case errors.Is(err, apperrors.ErrRoomUnavailable):
			response.Conflict(c, "Room is not available for selected dates")
		default:
			log.Printf("Lỗi khi tạo booking: %v", err)
			response.ServerError(c, "Failed to create booking")
		}
		return
	}

	ctrl.invalidateCache(userID)

	services.BroadcastBookingEvent(ctrl.melody, dto.BookingEvent{
		Type:      "booking_created",
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		HotelName: booking.Room.Hotel.Name,
	})

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err == nil && user.Email != "" {
		if err := services.SendBookingEmail(user.Email, booking.ID, booking.Room.Hotel.Name,
			booking.TotalPrice, request.CheckInDate, request.CheckOutDate); err != nil {
			log.Printf("Gửi email xác nhận không thành công: %v", err)
		}
	}

	response.OK(c, convertToBookingResponse(*booking))
}

// GetBookings godoc
// @Summary Danh sách booking của user, mới nhất trước
// @Tags bookings
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Router /bookings [get]
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var bookingResponses []dto.BookingResponse
	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, ctrl.cacheKey(userID), &bookingResponses); err == nil && len(bookingResponses) > 0 {
			response.OK(c, bookingResponses)
			return
		}
	}

	bookings, err := ctrl.service.ListByUser(userID)
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách booking: %v", err)
		response.ServerError(c, "Failed to fetch bookings")
		return
	}

	bookingResponses = make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, ctrl.cacheKey(userID), bookingResponses, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	response.OK(c, bookingResponses)
}

// GetBookingDetail godoc
// @Summary Chi tiết một booking, chỉ chủ booking được xem
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Router /bookings/{id} [get]
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	booking, err := ctrl.service.GetByID(userID, uint(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, apperrors.ErrNotOwner):
			response.Forbidden(c, "Forbidden")
		default:
			log.Printf("Lỗi khi lấy booking: %v", err)
			response.ServerError(c, "Failed to fetch booking")
		}
		return
	}

	response.OK(c, convertToBookingResponse(*booking))
}

// DeleteBooking godoc
// @Summary Hủy booking (xóa cứng), chỉ chủ booking được hủy
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.DeleteBookingRequest true "Booking cần hủy"
// @Success 200 {object} dto.DeleteBookingResponse
// @Router /bookings [delete]
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.DeleteBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Missing booking id")
		return
	}

	booking, err := ctrl.service.Cancel(userID, request.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, apperrors.ErrNotOwner):
			response.Forbidden(c, "Forbidden")
		default:
			log.Printf("Lỗi khi hủy booking: %v", err)
			response.ServerError(c, "Failed to delete booking")
		}
		return
	}

	ctrl.invalidateCache(userID)

	services.BroadcastBookingEvent(ctrl.melody, dto.BookingEvent{
		Type:      "booking_cancelled",
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
	})

	response.OK(c, dto.DeleteBookingResponse{Success: true})
}
