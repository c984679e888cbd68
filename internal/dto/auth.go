package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Nadia Rahman"`
	Email    string `json:"email" example:"nadia@example.com"`
	Password string `json:"password" example:"s3cretpass"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"nadia@example.com"`
	Password string `json:"password" example:"s3cretpass"`
}

type AuthResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"user_id" example:"4f1c2a7e-3d5b-4c8e-9a0f-1b2c3d4e5f60"`
	Role    string `json:"role" example:"mentee"`
}
