package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusConfirmed = "confirmed"
)

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"index"`
	RoomID     uint      `json:"roomId" gorm:"index"`
	Room       Room      `json:"room" gorm:"foreignKey:RoomID"`
	CheckIn    time.Time `json:"checkIn" gorm:"type:date;index"`
	CheckOut   time.Time `json:"checkOut" gorm:"type:date;index"`
	TotalPrice int64     `json:"totalPrice"` // đơn vị cent, = số đêm * giá phòng
	Status     string    `json:"status" gorm:"default:confirmed"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights đếm số đêm theo quy tắc làm tròn lên từng ngày
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

func NightsBetween(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

// Overlaps kiểm tra giao nhau theo khoảng nửa mở [checkIn, checkOut):
// chạm biên (checkOut == checkIn của booking khác) không tính là giao
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}
