package rhythm

import "testing"

func TestMapHesitations(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name      string
		intervals []float64
		locations []int
		details   []Hesitation
	}{
		{
			name:      "no intervals",
			locations: []int{},
			details:   []Hesitation{},
		},
		{
			name:      "below threshold",
			intervals: []float64{0.5, 2.9, 2.99},
			locations: []int{},
			details:   []Hesitation{},
		},
		{
			name:      "severity boundaries at 3, 5, and 10",
			intervals: []float64{3.0, 4.99, 5.0, 9.99, 10.0, 30.0},
			locations: []int{0, 1, 2, 3, 4, 5},
			details: []Hesitation{
				{Location: 0, Duration: 3.0, Severity: HesitationMedium},
				{Location: 1, Duration: 4.99, Severity: HesitationMedium},
				{Location: 2, Duration: 5.0, Severity: HesitationLong},
				{Location: 3, Duration: 9.99, Severity: HesitationLong},
				{Location: 4, Duration: 10.0, Severity: HesitationVeryLong},
				{Location: 5, Duration: 30.0, Severity: HesitationVeryLong},
			},
		},
		{
			name:      "locations are interval indexes",
			intervals: []float64{0.2, 6.0, 0.2, 12.0},
			locations: []int{1, 3},
			details: []Hesitation{
				{Location: 1, Duration: 6.0, Severity: HesitationLong},
				{Location: 3, Duration: 12.0, Severity: HesitationVeryLong},
			},
		},
		{
			name:      "duration rounded to two places",
			intervals: []float64{3.14159},
			locations: []int{0},
			details: []Hesitation{
				{Location: 0, Duration: 3.14, Severity: HesitationMedium},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, locations, details := MapHesitations(tt.intervals, th)
			if count != len(tt.details) {
				t.Errorf("count = %d, want %d", count, len(tt.details))
			}
			if len(locations) != len(tt.locations) {
				t.Fatalf("locations = %v, want %v", locations, tt.locations)
			}
			for i := range locations {
				if locations[i] != tt.locations[i] {
					t.Errorf("location[%d] = %d, want %d", i, locations[i], tt.locations[i])
				}
			}
			if len(details) != len(tt.details) {
				t.Fatalf("details = %v, want %v", details, tt.details)
			}
			for i := range details {
				if details[i] != tt.details[i] {
					t.Errorf("detail[%d] = %v, want %v", i, details[i], tt.details[i])
				}
			}
		})
	}
}
