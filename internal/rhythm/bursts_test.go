package rhythm

import "testing"

func TestDetectBursts(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name      string
		intervals []float64
		count     int
		segments  []BurstSegment
		maxSpeed  float64
	}{
		{
			name: "no intervals",
		},
		{
			name:      "all slow",
			intervals: []float64{0.5, 1.0, 2.0},
		},
		{
			name:      "run below minimum length",
			intervals: []float64{0.1, 0.1, 0.1, 0.1, 1.0},
		},
		{
			name:      "closed burst of five",
			intervals: []float64{0.1, 0.1, 0.1, 0.1, 0.1, 1.0},
			count:     1,
			segments:  []BurstSegment{{Start: 0, Length: 5, AvgSpeed: 10.0}},
			maxSpeed:  10.0,
		},
		{
			name:      "trailing burst not dropped",
			intervals: []float64{0.1, 0.1, 0.1, 0.1, 0.1},
			count:     1,
			segments:  []BurstSegment{{Start: 0, Length: 5, AvgSpeed: 10.0}},
			maxSpeed:  10.0,
		},
		{
			name:      "boundary interval closes the run",
			intervals: []float64{0.15, 0.1, 0.1, 0.1, 0.1, 0.1},
			count:     1,
			segments:  []BurstSegment{{Start: 1, Length: 5, AvgSpeed: 10.0}},
			maxSpeed:  10.0,
		},
		{
			name: "two bursts keep their start offsets",
			intervals: []float64{
				0.1, 0.1, 0.1, 0.1, 0.1, // burst at 0
				2.0,
				0.05, 0.05, 0.05, 0.05, 0.05, 0.05, // burst at 6
			},
			count: 2,
			segments: []BurstSegment{
				{Start: 0, Length: 5, AvgSpeed: 10.0},
				{Start: 6, Length: 6, AvgSpeed: 20.0},
			},
			maxSpeed: 20.0,
		},
		{
			name:      "zero cumulative time yields zero speed",
			intervals: []float64{0, 0, 0, 0, 0},
			count:     1,
			segments:  []BurstSegment{{Start: 0, Length: 5, AvgSpeed: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, segments, maxSpeed := DetectBursts(tt.intervals, th)
			if count != tt.count {
				t.Errorf("count = %d, want %d", count, tt.count)
			}
			if !approxEqual(maxSpeed, tt.maxSpeed, 1e-9) {
				t.Errorf("maxSpeed = %v, want %v", maxSpeed, tt.maxSpeed)
			}
			if len(segments) != len(tt.segments) {
				t.Fatalf("segments = %v, want %v", segments, tt.segments)
			}
			for i := range segments {
				if segments[i] != tt.segments[i] {
					t.Errorf("segment[%d] = %v, want %v", i, segments[i], tt.segments[i])
				}
			}
		})
	}
}

func TestDetectBurstsCustomThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.BurstMinLength = 3
	th.BurstIntervalMax = 0.3

	count, segments, _ := DetectBursts([]float64{0.2, 0.2, 0.2, 0.5}, th)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if segments[0].Length != 3 {
		t.Errorf("length = %d, want 3", segments[0].Length)
	}
	if !approxEqual(segments[0].AvgSpeed, 5.0, 1e-9) {
		t.Errorf("avgSpeed = %v, want 5.0", segments[0].AvgSpeed)
	}
}
