package config

import (
	"fmt"
	"log"
	"os"

	"hotelbooking/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslMode)
}

func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

func MigrateDB() {
	if err := DB.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	if err := EnsureBookingExclusion(DB); err != nil {
		log.Fatalf("Failed to create booking exclusion constraint: %v", err)
	}
}

// EnsureBookingExclusion chặn double-booking ở tầng database: hai booking
// "confirmed" trên cùng một phòng không được giao nhau theo [check_in, check_out).
// Constraint này là chốt chặn cuối cho race giữa bước kiểm tra trùng lịch và
// bước insert khi nhiều instance cùng ghi.
func EnsureBookingExclusion(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Raw(`SELECT count(*) FROM pg_constraint WHERE conname = 'bookings_no_overlap'`).Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// check_in/check_out là cột date nên daterange ở đây immutable,
	// đủ điều kiện làm biểu thức exclusion constraint
	return db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			room_id WITH =,
			daterange(check_in, check_out, '[)') WITH &&
		) WHERE (status = 'confirmed')
	`).Error
}
