package validate

import "testing"

func TestCapacity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"minimum", 10, false},
		{"maximum", 500, false},
		{"middle", 50, false},
		{"below minimum", 9, true},
		{"above maximum", 501, true},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Capacity(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Capacity(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCapacityString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "100", 100, false},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
		{"out of range", "9999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CapacityString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CapacityString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CapacityString(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
