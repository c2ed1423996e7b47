package vet

// UpdateProfileRequest is what a vet may change about themselves. The
// premium-partner flag feeds ranking and is granted by admins only.
type UpdateProfileRequest struct {
	Name               *string `json:"name"`
	ClinicName         *string `json:"clinic_name"`
	Location           *string `json:"location"`
	Schedule           *string `json:"schedule"`
	EmergencyAvailable *bool   `json:"emergency_available"`
}

type SetPremiumRequest struct {
	Premium *bool `json:"premium" binding:"required"`
}
