package seed

import (
	"fmt"
	"log"

	"hotelbooking/constants"
	"hotelbooking/models"

	"gorm.io/gorm"
)

// Run nạp dữ liệu mẫu khách sạn và phòng. Bỏ qua nếu đã có dữ liệu.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Đã có dữ liệu khách sạn, bỏ qua seeding")
		return nil
	}

	log.Println("Seeding database with sample hotels and rooms...")

	hotels := []models.Hotel{
		{
			Name:        "Luxury Haven Hotel",
			Description: "Experience luxury and comfort at our five-star hotel with world-class amenities and exceptional service.",
			City:        "New York",
			Country:     "USA",
			Address:     "123 Manhattan Avenue, New York, NY 10001",
			ImageURL:    "https://images.unsplash.com/photo-1596178065887-cf38d1da1b65?w=800&q=80",
			Rooms: []models.Room{
				{
					RoomNumber:  "101",
					Type:        constants.RoomTypeSingle,
					Price:       14900,
					Capacity:    1,
					Description: "Cozy single room with modern amenities",
					ImageURL:    "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80",
				},
				{
					RoomNumber:  "102",
					Type:        constants.RoomTypeDouble,
					Price:       19900,
					Capacity:    2,
					Description: "Spacious double room with king-size bed and city view",
					ImageURL:    "https://images.unsplash.com/photo-1611432097413-eca07d3003e9?w=800&q=80",
				},
				{
					RoomNumber:  "103",
					Type:        constants.RoomTypeSuite,
					Price:       29900,
					Capacity:    4,
					Description: "Elegant suite with living area, bedroom, and panoramic city views",
					ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&q=80",
				},
			},
		},
		{
			Name:        "Beachside Paradise Resort",
			Description: "Relax on pristine beaches and enjoy tropical vibes at our all-inclusive resort.",
			City:        "Miami",
			Country:     "USA",
			Address:     "456 Ocean Boulevard, Miami, FL 33139",
			ImageURL:    "https://images.unsplash.com/photo-1604147706283-d7119b5b822c?w=800&q=80",
			Rooms: []models.Room{
				{
					RoomNumber:  "201",
					Type:        constants.RoomTypeDouble,
					Price:       17900,
					Capacity:    2,
					Description: "Beach-view room with direct access to the sand",
					ImageURL:    "https://images.unsplash.com/photo-1615529328331-f8917597711f?w=800&q=80",
				},
				{
					RoomNumber:  "202",
					Type:        constants.RoomTypeSuite,
					Price:       27900,
					Capacity:    2,
					Description: "Luxury suite with private balcony and jacuzzi",
					ImageURL:    "https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=800&q=80",
				},
				{
					RoomNumber:  "203",
					Type:        constants.RoomTypeFamily,
					Price:       34900,
					Capacity:    4,
					Description: "Spacious family suite perfect for larger groups",
					ImageURL:    "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=800&q=80",
				},
			},
		},
		{
			Name:        "Mountain Retreat Inn",
			Description: "Experience peace and tranquility in the heart of the mountains with stunning scenic views.",
			City:        "Denver",
			Country:     "USA",
			Address:     "789 Peak Road, Denver, CO 80205",
			ImageURL:    "https://images.unsplash.com/photo-1520763185298-1b434c919abe?w=800&q=80",
			Rooms: []models.Room{
				{
					RoomNumber:  "301",
					Type:        constants.RoomTypeSingle,
					Price:       9900,
					Capacity:    1,
					Description: "Intimate room with mountain views and fireplace",
					ImageURL:    "https://images.unsplash.com/photo-1589939705066-5470979efdd4?w=800&q=80",
				},
				{
					RoomNumber:  "302",
					Type:        constants.RoomTypeDouble,
					Price:       14900,
					Capacity:    2,
					Description: "Comfortable double with private deck",
					ImageURL:    "https://images.unsplash.com/photo-1501876725169-7c18a67135b6?w=800&q=80",
				},
				{
					RoomNumber:  "303",
					Type:        constants.RoomTypeSuite,
					Price:       24900,
					Capacity:    2,
					Description: "Premium suite with hot tub and 360-degree mountain panorama",
					ImageURL:    "https://images.unsplash.com/photo-1523238102328-fb8812a12bda?w=800&q=80",
				},
			},
		},
	}

	for i := range hotels {
		for j := range hotels[i].Rooms {
			if err := hotels[i].Rooms[j].Validate(); err != nil {
				return fmt.Errorf("phòng %s của %s không hợp lệ: %w",
					hotels[i].Rooms[j].RoomNumber, hotels[i].Name, err)
			}
		}
		if err := db.Create(&hotels[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Successfully created sample hotels and rooms")
	return nil
}
