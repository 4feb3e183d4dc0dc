package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,bookdate"`
	CheckOutDate string `json:"checkOutDate" binding:"required,bookdate"`
}

// DeleteBookingRequest là DTO cho request hủy booking
type DeleteBookingRequest struct {
	ID uint `json:"id" binding:"required"`
}

type BookingHotelResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl"`
}

type BookingRoomResponse struct {
	ID         uint                 `json:"id"`
	HotelID    uint                 `json:"hotelId"`
	RoomNumber string               `json:"roomNumber"`
	Type       string               `json:"type"`
	Price      int64                `json:"price"`
	Capacity   int                  `json:"capacity"`
	ImageURL   string               `json:"imageUrl"`
	Hotel      BookingHotelResponse `json:"hotel"`
}

type BookingResponse struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"userId"`
	Room       BookingRoomResponse `json:"room"`
	CheckIn    string              `json:"checkInDate"`
	CheckOut   string              `json:"checkOutDate"`
	Nights     int                 `json:"nights"`
	TotalPrice int64               `json:"totalPrice"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// DeleteBookingResponse là body trả về khi hủy thành công
type DeleteBookingResponse struct {
	Success bool `json:"success"`
}

// BookingEvent được broadcast qua websocket khi booking thay đổi
type BookingEvent struct {
	Type      string `json:"type"` // booking_created | booking_cancelled
	BookingID uint   `json:"bookingId"`
	RoomID    uint   `json:"roomId"`
	HotelName string `json:"hotelName,omitempty"`
}
