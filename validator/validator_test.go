package validator

import (
	stderrors "errors"
	"testing"
	"time"

	apperrors "hotelbooking/errors"
)

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("2024-07-01")
	if err != nil {
		t.Fatalf("ParseBookingDate với ngày hợp lệ trả về lỗi: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.July || parsed.Day() != 1 {
		t.Errorf("ParseBookingDate trả về sai ngày: %v", parsed)
	}

	for _, bad := range []string{"07/01/2024", "2024-13-40", "hôm nay", ""} {
		if _, err := ParseBookingDate(bad); err == nil {
			t.Errorf("ParseBookingDate(%q) phải trả về lỗi", bad)
		}
	}
}

func TestValidateBookingRange(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2024-07-01")
	checkOut, _ := time.Parse("2006-01-02", "2024-07-04")

	if err := ValidateBookingRange(checkIn, checkOut); err != nil {
		t.Errorf("khoảng ngày hợp lệ không được trả về lỗi: %v", err)
	}

	if err := ValidateBookingRange(checkIn, checkIn); !stderrors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("cùng ngày nhận và trả phòng phải trả về ErrInvalidDateRange, got %v", err)
	}

	if err := ValidateBookingRange(checkOut, checkIn); !stderrors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("trả phòng trước nhận phòng phải trả về ErrInvalidDateRange, got %v", err)
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"hợp lệ", "user@example.com", "secret123", false},
		{"email trống", "", "secret123", true},
		{"email sai định dạng", "not-an-email", "secret123", true},
		{"mật khẩu trống", "user@example.com", "", true},
		{"mật khẩu quá ngắn", "user@example.com", "12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegister(%q, %q) err = %v, wantErr %v", tt.email, tt.password, err, tt.wantErr)
			}
		})
	}
}
