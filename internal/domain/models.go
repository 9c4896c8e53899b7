package domain

import "time"

type User struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	Balance      float64   `db:"balance"`
	IsActive     bool      `db:"is_active"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Game struct {
	ID             string     `db:"id"`
	WeekNumber     string     `db:"week_number"`
	WinningNumbers []int32    `db:"winning_numbers"`
	DrawDate       *time.Time `db:"draw_date"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Board struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	GameID          string    `db:"game_id"`
	SelectedNumbers []int32   `db:"selected_numbers"`
	Winner          bool      `db:"winner"`
	Repeat          bool      `db:"repeat"`
	CreatedAt       time.Time `db:"created_at"`
}

type BalanceLog struct {
	ID                int       `db:"id"`
	UserID            string    `db:"user_id"`
	Amount            float64   `db:"amount"`
	TransactionNumber string    `db:"transaction_number"`
	Approved          bool      `db:"approved"`
	CreatedAt         time.Time `db:"created_at"`
}

type HistoryLog struct {
	ID        string    `db:"id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// BoardWithOwner is the admin projection of a board joined with its owner.
type BoardWithOwner struct {
	Board
	OwnerName  string `db:"owner_name"`
	OwnerPhone string `db:"owner_phone"`
}

// BalanceLogWithOwner is the admin projection of a transaction joined with its owner.
type BalanceLogWithOwner struct {
	BalanceLog
	OwnerName string `db:"owner_name"`
}

// BoardHistoryEntry is a board denormalized with its owning game, used for
// player-facing history views.
type BoardHistoryEntry struct {
	BoardID         string
	UserID          string
	SelectedNumbers []int32
	Winner          bool
	Price           float64
	WeekNumber      string
	WinningNumbers  []int32
	DrawDate        *time.Time
}
