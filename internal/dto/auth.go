package dto

type LoginRequestDTO struct {
	Email    string `json:"email" example:"player@example.com"`
	Password string `json:"password" example:"hunter22"`
}

type LoginResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}
