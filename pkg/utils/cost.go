package utils

import "math"

// EstimateTransportCost returns the fare for moving goods the given
// distance at a provider's per-km rate, rounded to two decimal places.
func EstimateTransportCost(ratePerKm, distanceKm float64) float64 {
	return math.Round(ratePerKm*distanceKm*100) / 100
}
