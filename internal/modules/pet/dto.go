package pet

type CreatePetRequest struct {
	Name      string `json:"name" binding:"required"`
	Species   string `json:"species" binding:"required"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"`
}
