package dto

import "time"

type CreateUserRequestDTO struct {
	FirstName string `json:"first_name" example:"Jens"`
	LastName  string `json:"last_name" example:"Hansen"`
	Email     string `json:"email" example:"jens@example.com"`
	Phone     string `json:"phone" example:"+4512345678"`
	Password  string `json:"password" example:"hunter22"`
}

type UpdateUserRequestDTO struct {
	FirstName string `json:"first_name" example:"Jens"`
	LastName  string `json:"last_name" example:"Hansen"`
	Email     string `json:"email" example:"jens@example.com"`
	Phone     string `json:"phone" example:"+4512345678"`
	Password  string `json:"password,omitempty"`
}

type UserResponseDTO struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Balance   float64   `json:"balance" example:"120.5"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type SetUserActiveRequestDTO struct {
	IsActive bool `json:"is_active"`
}

type SetUserAdminRequestDTO struct {
	IsAdmin bool `json:"is_admin"`
}

type UserStatusResponseDTO struct {
	UserResponseDTO
	Status string `json:"status" example:"Active"`
}

type UserDetailsResponseDTO struct {
	UserResponseDTO
	TotalBoards        int                      `json:"total_boards"`
	WinningBoards      int                      `json:"winning_boards"`
	TotalTransactions  int                      `json:"total_transactions"`
	Boards             []BoardResponseDTO       `json:"boards"`
	RecentTransactions []TransactionResponseDTO `json:"recent_transactions"`
}
