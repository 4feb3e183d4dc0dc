package validator

import (
	"regexp"
	"time"

	"hotelbooking/constants"
	"hotelbooking/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings đăng ký rule "bookdate" cho gin binding:
// ngày nhận/trả phòng phải theo định dạng 2006-01-02
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(constants.DateLayout, fl.Field().String())
		return err == nil
	})
}

// ParseBookingDate parse ngày theo định dạng wire của API
func ParseBookingDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ: "+value, err)
	}
	return parsed, nil
}

// ValidateBookingRange kiểm tra checkOut phải sau checkIn (so sánh chặt)
func ValidateBookingRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidDateRange)
	}
	return nil
}

// ValidateRegister validate thông tin đăng ký tài khoản
func ValidateRegister(email, password string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
