package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/internal/service/balanceservice"
	"github.com/deadpigeons/server/pkg/auth"
	"github.com/deadpigeons/server/pkg/utils"
)

type Service interface {
	SubmitDeposit(ctx context.Context, userID string, amount float64, transactionNumber string) (*domain.BalanceLog, error)
	ApproveTransaction(ctx context.Context, transactionID int) (*domain.BalanceLog, error)
	GetPendingTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error)
	GetApprovedTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error)
	GetAllTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error)
	GetUserTransactions(ctx context.Context, userID string) ([]domain.BalanceLog, error)
	GetUserBalance(ctx context.Context, userID string) (*balanceservice.UserBalance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func transactionToDTO(log *domain.BalanceLog) dto.TransactionResponseDTO {
	status := "Pending"
	if log.Approved {
		status = "Approved"
	}
	return dto.TransactionResponseDTO{
		ID:                log.ID,
		UserID:            log.UserID,
		Amount:            log.Amount,
		TransactionNumber: log.TransactionNumber,
		Approved:          log.Approved,
		Status:            status,
		CreatedAt:         log.CreatedAt,
	}
}

func transactionsWithOwnerToDTO(logs []domain.BalanceLogWithOwner) []dto.TransactionWithOwnerResponseDTO {
	response := make([]dto.TransactionWithOwnerResponseDTO, len(logs))
	for i := range logs {
		response[i] = dto.TransactionWithOwnerResponseDTO{
			TransactionResponseDTO: transactionToDTO(&logs[i].BalanceLog),
			OwnerName:              logs[i].OwnerName,
		}
	}
	return response
}

// SubmitDeposit godoc
//
//	@Summary		Submit a deposit for approval
//	@Description	Records a pending MobilePay deposit; the balance is credited on admin approval
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitDepositRequestDTO	true	"Deposit amount and MobilePay reference"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/deposit [post]
func (h *BalanceHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log, err := h.balanceService.SubmitDeposit(r.Context(), userID, req.Amount, req.TransactionNumber)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount), errors.Is(err, balanceservice.ErrInvalidReference):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, balanceservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionToDTO(log))
}

// ApproveTransaction godoc
//
//	@Summary		Approve a pending deposit
//	@Description	Marks the transaction approved and credits the user's balance
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApproveTransactionRequestDTO	true	"Transaction ID"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Already approved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/approve [post]
func (h *BalanceHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.ApproveTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log, err := h.balanceService.ApproveTransaction(r.Context(), req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, balanceservice.ErrAlreadyApproved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionToDTO(log))
}

// GetPendingTransactions godoc
//
//	@Summary	List pending deposits awaiting approval
//	@Tags		Balance
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionWithOwnerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/balance/pending [get]
func (h *BalanceHandler) GetPendingTransactions(w http.ResponseWriter, r *http.Request) {
	logs, err := h.balanceService.GetPendingTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionsWithOwnerToDTO(logs))
}

// GetApprovedTransactions godoc
//
//	@Summary	List approved deposits
//	@Tags		Balance
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionWithOwnerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/balance/approved [get]
func (h *BalanceHandler) GetApprovedTransactions(w http.ResponseWriter, r *http.Request) {
	logs, err := h.balanceService.GetApprovedTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionsWithOwnerToDTO(logs))
}

// GetAllTransactions godoc
//
//	@Summary	List every balance transaction
//	@Tags		Balance
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionWithOwnerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/balance/transactions [get]
func (h *BalanceHandler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	logs, err := h.balanceService.GetAllTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionsWithOwnerToDTO(logs))
}

// GetUserTransactions godoc
//
//	@Summary	List one user's transactions
//	@Tags		Balance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{array}		dto.TransactionResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/balance/user/{userId}/transactions [get]
func (h *BalanceHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	logs, err := h.balanceService.GetUserTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	response := make([]dto.TransactionResponseDTO, len(logs))
	for i := range logs {
		response[i] = transactionToDTO(&logs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUserBalance godoc
//
//	@Summary	Get a user's balance overview
//	@Tags		Balance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.UserBalanceResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/balance/user/{userId} [get]
func (h *BalanceHandler) GetUserBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	balance, err := h.balanceService.GetUserBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	recent := make([]dto.TransactionResponseDTO, len(balance.RecentTransactions))
	for i := range balance.RecentTransactions {
		recent[i] = transactionToDTO(&balance.RecentTransactions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserBalanceResponseDTO{
		UserID:             balance.UserID,
		UserName:           balance.UserName,
		CurrentBalance:     balance.CurrentBalance,
		ApprovedSum:        balance.ApprovedSum,
		PendingSum:         balance.PendingSum,
		ApprovedCount:      balance.ApprovedCount,
		PendingCount:       balance.PendingCount,
		RecentTransactions: recent,
	})
}
