package controllers

import (
	"log"
	"strconv"
	"time"

	"hotelbooking/config"
	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const hotelsCacheKey = "hotels:all"

type HotelController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHotelController(db *gorm.DB, rdb *redis.Client) *HotelController {
	return &HotelController{db: db, rdb: rdb}
}

func parseSearchFilters(c *gin.Context) *dto.SearchFilters {
	filters := &dto.SearchFilters{
		Query:   c.Query("q"),
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	if v := c.Query("minPrice"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.PriceMin = &parsed
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.PriceMax = &parsed
		}
	}
	if v := c.Query("capacity"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filters.Capacity = &parsed
		}
	}

	return filters
}

// loadHotels lấy toàn bộ khách sạn kèm phòng, ưu tiên cache Redis
func (ctrl *HotelController) loadHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel

	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, hotelsCacheKey, &hotels); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	if err := ctrl.db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, err
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, hotelsCacheKey, hotels, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách khách sạn vào Redis: %v", err)
		}
	}

	return hotels, nil
}

// GetHotels godoc
// @Summary Danh sách khách sạn kèm phòng, hỗ trợ lọc và tìm mờ
// @Tags hotels
// @Produce json
// @Param q query string false "Từ khóa tìm mờ"
// @Param city query string false "Lọc theo thành phố"
// @Param country query string false "Lọc theo quốc gia"
// @Success 200 {array} models.Hotel
// @Router /hotels [get]
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.loadHotels()
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách khách sạn: %v", err)
		response.ServerError(c, "Failed to fetch hotels")
		return
	}

	filters := parseSearchFilters(c)

	// Gộp với bộ lọc đã nhớ theo session khi client yêu cầu
	if sessionId := c.GetString("sessionId"); sessionId != "" && ctrl.rdb != nil {
		if c.Query("remember") == "1" {
			if last, err := services.GetLastFilters(config.Ctx, ctrl.rdb, sessionId); err == nil {
				filters = services.MergeFilters(last, filters)
			}
		}
		if err := services.SaveLastFilters(config.Ctx, ctrl.rdb, sessionId, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc tìm kiếm: %v", err)
		}
	}

	response.OK(c, services.SearchHotels(hotels, filters))
}

// GetHotelDetail godoc
// @Summary Chi tiết một khách sạn kèm phòng
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} models.Hotel
// @Router /hotels/{id} [get]
func (ctrl *HotelController) GetHotelDetail(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Hotel not found")
		return
	}

	var hotel models.Hotel
	if err := ctrl.db.Preload("Rooms").First(&hotel, uint(hotelID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "Hotel not found")
			return
		}
		log.Printf("Lỗi khi lấy khách sạn %d: %v", hotelID, err)
		response.ServerError(c, "Failed to fetch hotel")
		return
	}

	response.OK(c, hotel)
}

// GetRooms godoc
// @Summary Danh sách phòng của một khách sạn
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {array} models.Room
// @Router /hotels/{id}/rooms [get]
func (ctrl *HotelController) GetRooms(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Hotel not found")
		return
	}

	var rooms []models.Room
	if err := ctrl.db.Preload("Hotel").Where("hotel_id = ?", uint(hotelID)).Find(&rooms).Error; err != nil {
		log.Printf("Lỗi khi lấy danh sách phòng: %v", err)
		response.ServerError(c, "Failed to fetch rooms")
		return
	}

	response.OK(c, rooms)
}

// GetRoomDetail godoc
// @Summary Chi tiết một phòng kèm khách sạn
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Param roomId path int true "Room ID"
// @Success 200 {object} models.Room
// @Router /hotels/{id}/rooms/{roomId} [get]
func (ctrl *HotelController) GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		response.NotFound(c, "Room not found")
		return
	}

	var room models.Room
	if err := ctrl.db.Preload("Hotel").First(&room, uint(roomID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c, "Room not found")
			return
		}
		log.Printf("Lỗi khi lấy phòng %d: %v", roomID, err)
		response.ServerError(c, "Failed to fetch room")
		return
	}

	response.OK(c, room)
}
