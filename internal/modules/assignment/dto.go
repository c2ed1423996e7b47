package assignment

type CreateRequest struct {
	PetID   int64 `json:"pet_id" binding:"required"`
	VetID   int64 `json:"vet_id" binding:"required"`
	Replace bool  `json:"replace"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}
