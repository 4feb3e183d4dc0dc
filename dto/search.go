package dto

// SearchFilters là bộ lọc tìm khách sạn, lưu lại theo session trong Redis
type SearchFilters struct {
	Query    string `json:"query,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	PriceMin *int64 `json:"priceMin,omitempty"`
	PriceMax *int64 `json:"priceMax,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
}
