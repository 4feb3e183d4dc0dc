package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"hotelbooking/dto"
	"hotelbooking/models"

	"github.com/fiam/gounidecode/unidecode"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách city duy nhất từ dữ liệu cho closestmatch
func prepareCityList(hotels []models.Hotel) []string {
	uniqueValues := make(map[string]bool)
	for _, hotel := range hotels {
		if hotel.City != "" {
			uniqueValues[normalizeInput(hotel.City)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một khách sạn với query tìm mờ
func scoreHotel(query string, hotel models.Hotel, cmCity *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := normalizeInput(hotel.Name)
	if strings.Contains(normalizedName, query) || calculateSimilarity(query, normalizedName) > 0.6 {
		score += 20
	}

	if cmCity != nil && cmCity.Closest(query) == normalizeInput(hotel.City) {
		score += 13
	}

	if strings.Contains(query, normalizeInput(hotel.Country)) && hotel.Country != "" {
		score += 5
	}

	for _, room := range hotel.Rooms {
		if strings.Contains(query, normalizeInput(room.Type)) {
			score += 4
			break
		}
	}

	return score
}

func matchesFilters(hotel models.Hotel, filters *dto.SearchFilters) bool {
	if filters.City != "" && normalizeInput(hotel.City) != normalizeInput(filters.City) {
		return false
	}
	if filters.Country != "" && normalizeInput(hotel.Country) != normalizeInput(filters.Country) {
		return false
	}

	if filters.PriceMin == nil && filters.PriceMax == nil && filters.Capacity == nil {
		return true
	}

	// Giá và sức chứa lọc theo phòng: cần ít nhất một phòng thỏa mãn
	for _, room := range hotel.Rooms {
		if filters.PriceMin != nil && room.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && room.Price > *filters.PriceMax {
			continue
		}
		if filters.Capacity != nil && room.Capacity < *filters.Capacity {
			continue
		}
		return true
	}
	return false
}

// SearchHotels lọc theo filters rồi xếp hạng theo query tìm mờ (nếu có)
func SearchHotels(hotels []models.Hotel, filters *dto.SearchFilters) []models.Hotel {
	filtered := make([]models.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if matchesFilters(hotel, filters) {
			filtered = append(filtered, hotel)
		}
	}

	if filters.Query == "" {
		return filtered
	}

	query := normalizeInput(filters.Query)
	cmCity := createMatcher(prepareCityList(filtered))

	type scored struct {
		hotel models.Hotel
		score int
	}

	scoreCh := make(chan scored, len(filtered))
	var wg sync.WaitGroup

	for _, hotel := range filtered {
		wg.Add(1)
		go func(h models.Hotel) {
			defer wg.Done()
			if s := scoreHotel(query, h, cmCity); s > 0 {
				scoreCh <- scored{hotel: h, score: s}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var results []scored
	for s := range scoreCh {
		results = append(results, s)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	ranked := make([]models.Hotel, 0, len(results))
	for _, s := range results {
		ranked = append(ranked, s.hotel)
	}
	return ranked
}

func SaveLastFilters(ctx context.Context, rdb *redis.Client, sessionID string, filters *dto.SearchFilters) error {
	b, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, "last_filters:"+sessionID, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return rdb.Del(ctx, "last_filters:"+sessionID).Err()
}

// MergeFilters gộp bộ lọc cũ với bộ lọc mới, giá trị mới được ưu tiên
func MergeFilters(old *dto.SearchFilters, next *dto.SearchFilters) *dto.SearchFilters {
	next.Query = orString(next.Query, old.Query)
	next.City = orString(next.City, old.City)
	next.Country = orString(next.Country, old.Country)
	next.Capacity = orIntPointer(next.Capacity, old.Capacity)

	// Người dùng nhập lại min/max: khoảng giá vô nghĩa thì bỏ vế cũ
	if next.PriceMin != nil && old.PriceMax != nil && *next.PriceMin > *old.PriceMax {
		next.PriceMax = nil
	} else {
		next.PriceMax = orInt64Pointer(next.PriceMax, old.PriceMax)
	}

	if next.PriceMax != nil && old.PriceMin != nil && *next.PriceMax < *old.PriceMin {
		next.PriceMin = nil
	} else {
		next.PriceMin = orInt64Pointer(next.PriceMin, old.PriceMin)
	}

	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orInt64Pointer(newVal, oldVal *int64) *int64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
