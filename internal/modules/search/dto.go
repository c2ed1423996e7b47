package search

type VetResult struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	ClinicName         string   `json:"clinic_name,omitempty"`
	Location           string   `json:"location,omitempty"`
	DistanceKm         *float64 `json:"distance_km,omitempty"`
	EmergencyAvailable bool     `json:"emergency_available"`
	Premium            bool     `json:"premium"`
	Rating             float64  `json:"rating"`
}

type SearchResponse struct {
	Vets         []VetResult `json:"vets"`
	UsedFallback bool        `json:"used_fallback"`
}
