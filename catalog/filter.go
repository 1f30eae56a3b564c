package catalog

import (
	"strings"

	"veyra-io/estates-web/models"
)

// CityAll is the sentinel filter value that leaves the collection untouched.
const CityAll = "all"

type City struct {
	ID   string
	Name string
}

// Cities is the fixed filter set presented on the listing and home pages.
var Cities = []City{
	{ID: CityAll, Name: "All Cities"},
	{ID: "mumbai", Name: "Mumbai"},
	{ID: "delhi", Name: "Delhi"},
	{ID: "bangalore", Name: "Bangalore"},
	{ID: "hyderabad", Name: "Hyderabad"},
}

// IsKnownCity reports whether id belongs to the fixed filter set.
func IsKnownCity(id string) bool {
	for _, c := range Cities {
		if c.ID == id {
			return true
		}
	}
	return false
}

// FilterByCity returns the subsequence of properties whose city matches the
// filter, case-insensitively. "all" (or empty) returns the input unchanged.
// The filter is idempotent and order-preserving; legacy string locations have
// no city and only survive the "all" filter.
func FilterByCity(properties []models.Property, city string) []models.Property {
	if city == "" || strings.EqualFold(city, CityAll) {
		return properties
	}

	want := strings.ToLower(city)
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if strings.ToLower(p.Location.CityName()) == want {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
