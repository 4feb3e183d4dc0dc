package services

import (
	"log"

	"hotelbooking/dto"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// BroadcastBookingEvent đẩy sự kiện booking qua websocket cho các client
// đang theo dõi. Broadcast thất bại chỉ log, không làm fail request.
func BroadcastBookingEvent(m *melody.Melody, event dto.BookingEvent) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi khi encode booking event: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast booking event: %v", err)
	}
}
