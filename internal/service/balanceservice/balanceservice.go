package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/pg"
	balancerepo "github.com/deadpigeons/server/internal/repo/balance-repo"
)

type BalanceRepo interface {
	Create(ctx context.Context, log *domain.BalanceLog) (*domain.BalanceLog, error)
	FindByID(ctx context.Context, id int) (*domain.BalanceLog, error)
	Approve(ctx context.Context, id int) (*domain.BalanceLog, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.BalanceLog, error)
	RecentByUserID(ctx context.Context, userID string, limit int) ([]domain.BalanceLog, error)
	FindAllWithOwner(ctx context.Context) ([]domain.BalanceLogWithOwner, error)
	FindByApprovedWithOwner(ctx context.Context, approved bool) ([]domain.BalanceLogWithOwner, error)
	SummaryByUserID(ctx context.Context, userID string) (*balancerepo.Summary, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID string, delta float64) (float64, error)
}

type HistoryLogger interface {
	CreateLog(ctx context.Context, content string) (*domain.HistoryLog, error)
}

type Service struct {
	balanceRepo BalanceRepo
	userRepo    UserRepo
	txManager   pg.TXManager
	history     HistoryLogger
}

func New(balanceRepo BalanceRepo, userRepo UserRepo, txManager pg.TXManager, history HistoryLogger) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		history:     history,
	}
}

const recentTransactionsLimit = 10

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidAmount       = errors.New("amount must be greater than 0")
	ErrInvalidReference    = errors.New("transaction number is required")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyApproved     = errors.New("transaction has already been approved")
)

// SubmitDeposit records a claimed external payment as a pending transaction.
// The balance is only credited on approval.
func (s *Service) SubmitDeposit(ctx context.Context, userID string, amount float64, transactionNumber string) (*domain.BalanceLog, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(transactionNumber) == "" {
		return nil, ErrInvalidReference
	}

	log := &domain.BalanceLog{
		UserID:            userID,
		Amount:            amount,
		TransactionNumber: transactionNumber,
		Approved:          false,
	}
	created, err := s.balanceRepo.Create(ctx, log)
	if err != nil {
		zap.L().Error("can't create balance log", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("User %s submitted deposit of %.2f DKK (ref %s)", userID, amount, transactionNumber))
	return created, nil
}

// ApproveTransaction flips a pending transaction to approved and credits the
// owner's balance, atomically. Approval is one-shot.
func (s *Service) ApproveTransaction(ctx context.Context, id int) (*domain.BalanceLog, error) {
	var approved *domain.BalanceLog

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		log, err := s.balanceRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if log == nil {
			return ErrTransactionNotFound
		}
		if log.Approved {
			return ErrAlreadyApproved
		}

		approved, err = s.balanceRepo.Approve(ctx, id)
		if err != nil {
			return err
		}
		if _, err := s.userRepo.AdjustBalance(ctx, log.UserID, log.Amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTransactionNotFound) && !errors.Is(err, ErrAlreadyApproved) {
			zap.L().Error("can't approve transaction", zap.Error(err))
		}
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Approved transaction %d, credited %.2f DKK to user %s", approved.ID, approved.Amount, approved.UserID))
	return approved, nil
}

func (s *Service) GetPendingTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error) {
	logs, err := s.balanceRepo.FindByApprovedWithOwner(ctx, false)
	if err != nil {
		zap.L().Error("failed to get pending transactions", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (s *Service) GetApprovedTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error) {
	logs, err := s.balanceRepo.FindByApprovedWithOwner(ctx, true)
	if err != nil {
		zap.L().Error("failed to get approved transactions", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (s *Service) GetAllTransactions(ctx context.Context) ([]domain.BalanceLogWithOwner, error) {
	logs, err := s.balanceRepo.FindAllWithOwner(ctx)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (s *Service) GetUserTransactions(ctx context.Context, userID string) ([]domain.BalanceLog, error) {
	logs, err := s.balanceRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user transactions", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// UserBalance is the aggregated wallet view for one user.
type UserBalance struct {
	UserID             string
	UserName           string
	CurrentBalance     float64
	ApprovedSum        float64
	PendingSum         float64
	ApprovedCount      int
	PendingCount       int
	RecentTransactions []domain.BalanceLog
}

func (s *Service) GetUserBalance(ctx context.Context, userID string) (*UserBalance, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	summary, err := s.balanceRepo.SummaryByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance summary", zap.Error(err))
		return nil, err
	}
	recent, err := s.balanceRepo.RecentByUserID(ctx, userID, recentTransactionsLimit)
	if err != nil {
		zap.L().Error("failed to get recent transactions", zap.Error(err))
		return nil, err
	}

	return &UserBalance{
		UserID:             user.ID,
		UserName:           user.FirstName + " " + user.LastName,
		CurrentBalance:     user.Balance,
		ApprovedSum:        summary.ApprovedSum,
		PendingSum:         summary.PendingSum,
		ApprovedCount:      summary.ApprovedCount,
		PendingCount:       summary.PendingCount,
		RecentTransactions: recent,
	}, nil
}

func (s *Service) log(ctx context.Context, content string) {
	if _, err := s.history.CreateLog(ctx, content); err != nil {
		zap.L().Warn("can't write history log", zap.Error(err))
	}
}
