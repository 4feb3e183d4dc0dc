package services

import (
	"fmt"
	"net/smtp"

	"hotelbooking/config"
)

// SendBookingEmail gửi email xác nhận đặt phòng. Lỗi gửi mail không làm
// fail request đặt phòng, caller chỉ log lại.
func SendBookingEmail(email string, bookingID uint, hotelName string, totalPrice int64, checkInDate, checkOutDate string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	if from == "" || host == "" {
		return fmt.Errorf("smtp chưa được cấu hình")
	}

	to := []string{email}
	subject := "Subject: Đặt phòng thành công\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%d</strong></li>
			<li>Khách sạn: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%s</strong></li>
		</ul>
		<p>Cảm ơn bạn đã sử dụng dịch vụ của chúng tôi!</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingID, hotelName, checkInDate, checkOutDate, FormatPrice(totalPrice))

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// FormatPrice đổi số tiền từ cent sang dạng hiển thị "123.45"
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
