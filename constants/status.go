package constants

// Booking status
const (
	BookingStatusConfirmed = "confirmed"
)

// Room types
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
	RoomTypeFamily = "Family"
)

// Auth providers
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Wire format for check-in/check-out dates
const DateLayout = "2006-01-02"
