package dto

import "time"

type SubmitDepositRequestDTO struct {
	Amount            float64 `json:"amount" example:"200"`
	TransactionNumber string  `json:"transaction_number" example:"MP-20937442"`
}

type ApproveTransactionRequestDTO struct {
	TransactionID int `json:"transaction_id" example:"42"`
}

type TransactionResponseDTO struct {
	ID                int       `json:"id"`
	UserID            string    `json:"user_id"`
	Amount            float64   `json:"amount" example:"200"`
	TransactionNumber string    `json:"transaction_number"`
	Approved          bool      `json:"approved"`
	Status            string    `json:"status" example:"Pending"`
	CreatedAt         time.Time `json:"created_at"`
}

type TransactionWithOwnerResponseDTO struct {
	TransactionResponseDTO
	OwnerName string `json:"owner_name"`
}

type UserBalanceResponseDTO struct {
	UserID             string                   `json:"user_id"`
	UserName           string                   `json:"user_name"`
	CurrentBalance     float64                  `json:"current_balance" example:"120.5"`
	ApprovedSum        float64                  `json:"approved_sum"`
	PendingSum         float64                  `json:"pending_sum"`
	ApprovedCount      int                      `json:"approved_count"`
	PendingCount       int                      `json:"pending_count"`
	RecentTransactions []TransactionResponseDTO `json:"recent_transactions"`
}
