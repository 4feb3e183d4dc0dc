package services

import (
	"errors"
	"time"

	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/services/logger"
	"hotelbooking/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService xử lý logic đặt phòng: kiểm tra khoảng ngày, tính giá,
// chống trùng lịch. Mọi operation nhận actorUserID tường minh thay vì đọc
// session từ context.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: l,
	}
}

// Create tạo booking mới cho actorUserID trên roomID trong [checkIn, checkOut).
// Bước kiểm tra trùng lịch và bước insert chạy trong cùng một transaction,
// kèm row lock trên phòng (Postgres) để hai request song song trên cùng phòng
// không cùng vượt qua bước kiểm tra.
func (s *BookingService) Create(actorUserID uint, roomID uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	if err := validator.ValidateBookingRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		roomTx := tx
		if tx.Dialector.Name() == "postgres" {
			roomTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room models.Room
		if err := roomTx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return err
		}

		nights := models.NightsBetween(checkIn, checkOut)
		totalPrice := int64(nights) * room.Price

		// Khoảng nửa mở [checkIn, checkOut): chạm biên không tính là trùng
		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status = ? AND check_in < ? AND check_out > ?",
				roomID, models.BookingStatusConfirmed, checkOut, checkIn).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return apperrors.ErrRoomUnavailable
		}

		booking = models.Booking{
			UserID:     actorUserID,
			RoomID:     roomID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalPrice: totalPrice,
			Status:     models.BookingStatusConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if isExclusionViolation(err) {
			// Constraint bookings_no_overlap bắt được lượt đặt lọt qua check
			return nil, apperrors.ErrRoomUnavailable
		}
		return nil, err
	}

	if err := s.db.Preload("Room").Preload("Room.Hotel").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo booking %d: phòng %d, user %d, %d đêm, tổng %d",
		booking.ID, booking.RoomID, booking.UserID, booking.Nights(), booking.TotalPrice)
	return &booking, nil
}

// GetByID lấy booking theo ID, chỉ chủ booking được xem
func (s *BookingService) GetByID(actorUserID uint, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").Preload("Room.Hotel").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if booking.UserID != actorUserID {
		return nil, apperrors.ErrNotOwner
	}

	return &booking, nil
}

// ListByUser lấy các booking của actor, mới tạo nhất trước
func (s *BookingService) ListByUser(actorUserID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Room").Preload("Room.Hotel").
		Where("user_id = ?", actorUserID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel hủy booking: xóa cứng dòng dữ liệu, không chuyển trạng thái
func (s *BookingService) Cancel(actorUserID uint, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	if booking.UserID != actorUserID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.db.Delete(&booking).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Đã hủy booking %d của user %d", booking.ID, actorUserID)
	return &booking, nil
}

// TodayCheckIns đếm số booking nhận phòng hôm nay, dùng cho bản tin cron
func (s *BookingService) TodayCheckIns() (int64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_in >= ? AND check_in < ?",
			models.BookingStatusConfirmed, today, tomorrow).
		Count(&count).Error
	return count, err
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
