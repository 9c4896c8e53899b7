package dto

import "time"

type HistoryLogResponseDTO struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type BoardHistoryResponseDTO struct {
	BoardID         string     `json:"board_id"`
	UserID          string     `json:"user_id"`
	SelectedNumbers []int32    `json:"selected_numbers"`
	Winner          bool       `json:"winner"`
	Price           float64    `json:"price" example:"20"`
	WeekNumber      string     `json:"week_number"`
	WinningNumbers  []int32    `json:"winning_numbers"`
	DrawDate        *time.Time `json:"draw_date,omitempty"`
}
