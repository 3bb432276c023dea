package model

// Partial-update payloads: nil means "leave unchanged", mirroring the
// PUT endpoints which only touch fields present in the request body.

type PractitionerUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	Specialty   *string `json:"specialty,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Schedule    *string `json:"schedule,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

type PatientUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
