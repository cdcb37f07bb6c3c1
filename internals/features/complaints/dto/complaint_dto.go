package dto

type CreateComplaintRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
}

type ResolveComplaintRequest struct {
	Notes string `json:"notes" validate:"required,min=3"`
}
