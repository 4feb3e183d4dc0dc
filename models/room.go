package models

import (
	"fmt"
	"time"
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotelId" gorm:"index"`
	RoomNumber  string    `json:"roomNumber"`
	Type        string    `json:"type"`
	Price       int64     `json:"price"` // giá mỗi đêm, đơn vị cent
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel       Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
}

func (r *Room) Validate() error {
	if r.Price <= 0 {
		return fmt.Errorf("invalid price: %d, must be positive", r.Price)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", r.Capacity)
	}
	return nil
}
