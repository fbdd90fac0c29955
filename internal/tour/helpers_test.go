package tour_test

import "strconv"

func formatOne(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
