package rhythm

// MapHesitations finds individual anomalously long pauses and grades each by
// duration. Locations are interval indexes, in interval order.
func MapHesitations(intervals []float64, th Thresholds) (count int, locations []int, details []Hesitation) {
	locations = make([]int, 0)
	details = make([]Hesitation, 0)

	for i, v := range intervals {
		if v < th.HesitationMin {
			continue
		}
		locations = append(locations, i)

		severity := HesitationMedium
		switch {
		case v >= 10:
			severity = HesitationVeryLong
		case v >= 5:
			severity = HesitationLong
		}

		details = append(details, Hesitation{
			Location: i,
			Duration: roundTo(v, 2),
			Severity: severity,
		})
	}
	return len(details), locations, details
}
