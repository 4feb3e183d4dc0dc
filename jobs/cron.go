package jobs

import (
	"fmt"
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// CheckInSummarizer định nghĩa interface cho bản tin check-in hằng ngày
type CheckInSummarizer interface {
	TodayCheckIns() (int64, error)
}

var checkInSummarizer CheckInSummarizer

// SetCheckInSummarizer thiết lập implementation cho CheckInSummarizer
func SetCheckInSummarizer(s CheckInSummarizer) {
	checkInSummarizer = s
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Bản tin số lượt nhận phòng trong ngày, chạy lúc 7h sáng
	_, err := c.AddFunc("0 7 * * *", func() {
		if checkInSummarizer == nil {
			log.Println("Lỗi: CheckInSummarizer chưa được thiết lập")
			return
		}

		count, err := checkInSummarizer.TodayCheckIns()
		if err != nil {
			log.Printf("Lỗi khi đếm lượt nhận phòng hôm nay: %v", err)
			return
		}

		message := fmt.Sprintf(`{"type":"daily_checkins","count":%d}`, count)
		if err := m.Broadcast([]byte(message)); err != nil {
			log.Printf("Lỗi khi broadcast bản tin check-in: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
