package dto

import "time"

type CreateBoardRequestDTO struct {
	SelectedNumbers []int32 `json:"selected_numbers" example:"1,2,3,4,5"`
	Repeat          bool    `json:"repeat"`
}

type ValidateBoardRequestDTO struct {
	SelectedNumbers []int32 `json:"selected_numbers" example:"1,2,3,4,5"`
}

type ValidateBoardResponseDTO struct {
	IsValid        bool    `json:"is_valid"`
	ErrorMessage   string  `json:"error_message,omitempty"`
	Price          float64 `json:"price,omitempty" example:"20"`
	NumberOfFields int     `json:"number_of_fields,omitempty" example:"5"`
}

type ToggleRepeatRequestDTO struct {
	Repeat bool `json:"repeat"`
}

type BoardResponseDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	GameID          string    `json:"game_id"`
	SelectedNumbers []int32   `json:"selected_numbers"`
	Winner          bool      `json:"winner"`
	Repeat          bool      `json:"repeat"`
	CreatedAt       time.Time `json:"created_at"`
}

type BoardWithOwnerResponseDTO struct {
	BoardResponseDTO
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}
