package services

import (
	"errors"
	"testing"
	"time"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory thất bại: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Room{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate schema thất bại: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewBookingService(BookingServiceOptions{DB: db}), db
}

func newTestRoom(t *testing.T, db *gorm.DB, price int64) models.Room {
	t.Helper()
	hotel := models.Hotel{
		Name:    "Luxury Haven Hotel",
		City:    "New York",
		Country: "USA",
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("tạo khách sạn thất bại: %v", err)
	}
	room := models.Room{
		HotelID:    hotel.ID,
		RoomNumber: "101",
		Type:       constants.RoomTypeDouble,
		Price:      price,
		Capacity:   2,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("tạo phòng thất bại: %v", err)
	}
	return room
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		t.Fatalf("parse ngày %q thất bại: %v", value, err)
	}
	return parsed
}

func TestCreateBookingComputesNightsAndTotal(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	booking, err := svc.Create(1, room.ID, day(t, "2024-07-01"), day(t, "2024-07-04"))
	if err != nil {
		t.Fatalf("Create trả về lỗi: %v", err)
	}

	if booking.Nights() != 3 {
		t.Errorf("Nights = %d, muốn 3", booking.Nights())
	}
	if booking.TotalPrice != 45000 {
		t.Errorf("TotalPrice = %d, muốn 45000", booking.TotalPrice)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, muốn %q", booking.Status, models.BookingStatusConfirmed)
	}
	if booking.Room.Hotel.Name != "Luxury Haven Hotel" {
		t.Errorf("phải preload Room.Hotel, got %q", booking.Room.Hotel.Name)
	}
}

func TestCreateBookingRejectsInvalidRange(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	if _, err := svc.Create(1, room.ID, day(t, "2024-07-04"), day(t, "2024-07-04")); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("cùng ngày phải trả về ErrInvalidDateRange, got %v", err)
	}
	if _, err := svc.Create(1, room.ID, day(t, "2024-07-04"), day(t, "2024-07-01")); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("trả phòng trước nhận phòng phải trả về ErrInvalidDateRange, got %v", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("không được ghi booking nào khi khoảng ngày sai, có %d dòng", count)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(1, 999, day(t, "2024-07-01"), day(t, "2024-07-04")); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Errorf("phòng không tồn tại phải trả về ErrRoomNotFound, got %v", err)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	if _, err := svc.Create(1, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05")); err != nil {
		t.Fatalf("booking gốc thất bại: %v", err)
	}

	overlapping := []struct {
		checkIn  string
		checkOut string
	}{
		{"2024-06-03", "2024-06-06"},
		{"2024-05-30", "2024-06-02"},
		{"2024-06-02", "2024-06-04"},
		{"2024-05-30", "2024-06-07"},
		{"2024-06-01", "2024-06-05"},
	}

	for _, tt := range overlapping {
		_, err := svc.Create(2, room.ID, day(t, tt.checkIn), day(t, tt.checkOut))
		if !errors.Is(err, apperrors.ErrRoomUnavailable) {
			t.Errorf("[%s, %s) phải trả về ErrRoomUnavailable, got %v", tt.checkIn, tt.checkOut, err)
		}
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 1 {
		t.Errorf("chỉ được giữ lại booking gốc, có %d dòng", count)
	}
}

func TestCreateBookingAllowsTouchingDates(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	if _, err := svc.Create(1, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05")); err != nil {
		t.Fatalf("booking gốc thất bại: %v", err)
	}

	// Ngày trả phòng của booking này là ngày nhận phòng của booking kia
	if _, err := svc.Create(2, room.ID, day(t, "2024-06-05"), day(t, "2024-06-07")); err != nil {
		t.Errorf("nhận phòng đúng ngày trả phòng cũ phải được phép, got %v", err)
	}
	if _, err := svc.Create(3, room.ID, day(t, "2024-05-28"), day(t, "2024-06-01")); err != nil {
		t.Errorf("trả phòng đúng ngày nhận phòng cũ phải được phép, got %v", err)
	}
}

func TestCreateBookingDifferentRoomsIndependent(t *testing.T) {
	svc, db := newTestService(t)
	roomA := newTestRoom(t, db, 15000)

	roomB := models.Room{
		HotelID:    roomA.HotelID,
		RoomNumber: "102",
		Type:       constants.RoomTypeSuite,
		Price:      29900,
		Capacity:   4,
	}
	if err := db.Create(&roomB).Error; err != nil {
		t.Fatalf("tạo phòng thứ hai thất bại: %v", err)
	}

	if _, err := svc.Create(1, roomA.ID, day(t, "2024-06-01"), day(t, "2024-06-05")); err != nil {
		t.Fatalf("booking phòng A thất bại: %v", err)
	}
	if _, err := svc.Create(2, roomB.ID, day(t, "2024-06-01"), day(t, "2024-06-05")); err != nil {
		t.Errorf("cùng khoảng ngày trên phòng khác phải được phép, got %v", err)
	}
}

func TestGetByIDOwnership(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	booking, err := svc.Create(7, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05"))
	if err != nil {
		t.Fatalf("Create thất bại: %v", err)
	}

	got, err := svc.GetByID(7, booking.ID)
	if err != nil {
		t.Fatalf("chủ booking phải xem được: %v", err)
	}
	if got.ID != booking.ID {
		t.Errorf("GetByID trả về booking %d, muốn %d", got.ID, booking.ID)
	}

	if _, err := svc.GetByID(8, booking.ID); !errors.Is(err, apperrors.ErrNotOwner) {
		t.Errorf("user khác phải nhận ErrNotOwner, got %v", err)
	}
	if _, err := svc.GetByID(7, booking.ID+100); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("booking không tồn tại phải trả về ErrBookingNotFound, got %v", err)
	}
}

func TestCancelOwnershipAndNotFound(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	booking, err := svc.Create(7, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05"))
	if err != nil {
		t.Fatalf("Create thất bại: %v", err)
	}

	if _, err := svc.Cancel(8, booking.ID); !errors.Is(err, apperrors.ErrNotOwner) {
		t.Errorf("user khác hủy phải nhận ErrNotOwner, got %v", err)
	}
	if _, err := svc.GetByID(7, booking.ID); err != nil {
		t.Errorf("booking phải còn nguyên sau lượt hủy trái phép: %v", err)
	}

	if _, err := svc.Cancel(7, booking.ID+100); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("hủy booking không tồn tại phải trả về ErrBookingNotFound, got %v", err)
	}
}

func TestCancelFreesDates(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	booking, err := svc.Create(1, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05"))
	if err != nil {
		t.Fatalf("Create thất bại: %v", err)
	}

	if _, err := svc.Cancel(1, booking.ID); err != nil {
		t.Fatalf("Cancel thất bại: %v", err)
	}

	if _, err := svc.GetByID(1, booking.ID); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("booking đã hủy phải biến mất, got %v", err)
	}

	bookings, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser thất bại: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("danh sách sau khi hủy phải rỗng, có %d booking", len(bookings))
	}

	// Khoảng ngày được giải phóng, user khác đặt lại được
	if _, err := svc.Create(2, room.ID, day(t, "2024-06-01"), day(t, "2024-06-05")); err != nil {
		t.Errorf("đặt lại khoảng ngày đã hủy phải thành công, got %v", err)
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	ranges := []struct {
		checkIn  string
		checkOut string
	}{
		{"2024-06-01", "2024-06-03"},
		{"2024-06-10", "2024-06-12"},
		{"2024-06-20", "2024-06-22"},
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i, r := range ranges {
		booking, err := svc.Create(1, room.ID, day(t, r.checkIn), day(t, r.checkOut))
		if err != nil {
			t.Fatalf("Create #%d thất bại: %v", i, err)
		}
		// Ép created_at tách biệt để thứ tự sort xác định
		if err := db.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("cập nhật created_at thất bại: %v", err)
		}
		ids = append(ids, booking.ID)
	}

	// Booking của user khác không được lẫn vào danh sách
	if _, err := svc.Create(2, room.ID, day(t, "2024-07-01"), day(t, "2024-07-03")); err != nil {
		t.Fatalf("Create cho user khác thất bại: %v", err)
	}

	bookings, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser thất bại: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("ListByUser trả về %d booking, muốn 3", len(bookings))
	}

	want := []uint{ids[2], ids[1], ids[0]}
	for i, booking := range bookings {
		if booking.ID != want[i] {
			t.Errorf("vị trí %d: booking %d, muốn %d (mới nhất trước)", i, booking.ID, want[i])
		}
	}
}

func TestConfirmedBookingsStayDisjoint(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	attempts := []struct {
		checkIn  string
		checkOut string
	}{
		{"2024-06-01", "2024-06-05"},
		{"2024-06-03", "2024-06-08"},
		{"2024-06-05", "2024-06-09"},
		{"2024-06-08", "2024-06-10"},
		{"2024-05-28", "2024-06-01"},
		{"2024-06-04", "2024-06-06"},
	}

	for _, a := range attempts {
		_, err := svc.Create(1, room.ID, day(t, a.checkIn), day(t, a.checkOut))
		if err != nil && !errors.Is(err, apperrors.ErrRoomUnavailable) {
			t.Fatalf("[%s, %s): lỗi bất ngờ %v", a.checkIn, a.checkOut, err)
		}
	}

	var stored []models.Booking
	if err := db.Find(&stored).Error; err != nil {
		t.Fatalf("đọc booking thất bại: %v", err)
	}

	for i := range stored {
		for j := i + 1; j < len(stored); j++ {
			if stored[i].Overlaps(stored[j].CheckIn, stored[j].CheckOut) {
				t.Errorf("booking %d và %d chồng lấn nhau", stored[i].ID, stored[j].ID)
			}
		}
	}
}

func TestTodayCheckIns(t *testing.T) {
	svc, db := newTestService(t)
	room := newTestRoom(t, db, 15000)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	if _, err := svc.Create(1, room.ID, today, today.Add(48*time.Hour)); err != nil {
		t.Fatalf("Create hôm nay thất bại: %v", err)
	}
	if _, err := svc.Create(2, room.ID, today.Add(72*time.Hour), today.Add(96*time.Hour)); err != nil {
		t.Fatalf("Create tương lai thất bại: %v", err)
	}

	count, err := svc.TodayCheckIns()
	if err != nil {
		t.Fatalf("TodayCheckIns thất bại: %v", err)
	}
	if count != 1 {
		t.Errorf("TodayCheckIns = %d, muốn 1", count)
	}
}
