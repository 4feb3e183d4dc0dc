package models

import (
	"encoding/json"
	"time"
)

type Hotel struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Address     string          `json:"address"`
	ImageURL    string          `json:"imageUrl"`
	Img         json.RawMessage `json:"img" gorm:"type:json"` // gallery ảnh khách sạn
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room          `json:"rooms" gorm:"foreignKey:HotelID"`
}
