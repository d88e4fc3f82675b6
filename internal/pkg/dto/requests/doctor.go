package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required,max=120"`
	// Image is an optional base64 encoded picture, with or without a data URI prefix.
	Image string `json:"image" validate:"omitempty"`
}
