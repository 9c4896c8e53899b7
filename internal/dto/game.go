package dto

import "time"

type DrawWinningNumbersRequestDTO struct {
	WinningNumbers []int32 `json:"winning_numbers" example:"3,7,12"`
}

type GameResponseDTO struct {
	ID                string     `json:"id"`
	WeekNumber        string     `json:"week_number" example:"14"`
	WinningNumbers    []int32    `json:"winning_numbers"`
	HasWinningNumbers bool       `json:"has_winning_numbers"`
	DrawDate          *time.Time `json:"draw_date,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

type GameDetailsResponseDTO struct {
	GameResponseDTO
	TotalBoards   int                         `json:"total_boards"`
	TotalWinners  int                         `json:"total_winners"`
	Boards        []BoardWithOwnerResponseDTO `json:"boards"`
	WinningBoards []BoardWithOwnerResponseDTO `json:"winning_boards"`
}
