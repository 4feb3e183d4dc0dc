package models

import "testing"

func TestRoomValidate(t *testing.T) {
	tests := []struct {
		name    string
		room    Room
		wantErr bool
	}{
		{"hợp lệ", Room{Price: 14900, Capacity: 2}, false},
		{"giá bằng không", Room{Price: 0, Capacity: 2}, true},
		{"giá âm", Room{Price: -100, Capacity: 2}, true},
		{"sức chứa bằng không", Room{Price: 14900, Capacity: 0}, true},
		{"sức chứa âm", Room{Price: 14900, Capacity: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.room.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
