package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/pkg/auth"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	SearchByPhone(ctx context.Context, phone string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	SetAdmin(ctx context.Context, id string, admin bool) (*domain.User, error)
}

type BoardRepo interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.Board, error)
	CountByUserID(ctx context.Context, userID string) (int, int, error)
}

type BalanceRepo interface {
	CountByUserID(ctx context.Context, userID string) (int, error)
	RecentByUserID(ctx context.Context, userID string, limit int) ([]domain.BalanceLog, error)
}

type HistoryLogger interface {
	CreateLog(ctx context.Context, content string) (*domain.HistoryLog, error)
}

type Service struct {
	userRepo    Repo
	boardRepo   BoardRepo
	balanceRepo BalanceRepo
	hashService auth.HashServiceInterface
	history     HistoryLogger
}

func New(userRepo Repo, boardRepo BoardRepo, balanceRepo BalanceRepo, hashService auth.HashServiceInterface, history HistoryLogger) *Service {
	return &Service{
		userRepo:    userRepo,
		boardRepo:   boardRepo,
		balanceRepo: balanceRepo,
		hashService: hashService,
		history:     history,
	}
}

const recentTransactionsLimit = 10

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMissingFields       = errors.New("fill out all fields")
	ErrEmailTaken          = errors.New("email already exists")
	ErrUserHasBoards       = errors.New("cannot delete user with existing boards")
	ErrUserHasBalance      = errors.New("cannot delete user with remaining balance")
	ErrUserHasTransactions = errors.New("cannot delete user with transaction history")
)

// UserParams carries the writable user fields.
type UserParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

func (p UserParams) complete() bool {
	return strings.TrimSpace(p.FirstName) != "" &&
		strings.TrimSpace(p.LastName) != "" &&
		strings.TrimSpace(p.Email) != "" &&
		strings.TrimSpace(p.Phone) != ""
}

func (s *Service) CreateUser(ctx context.Context, params UserParams) (*domain.User, error) {
	if !params.complete() {
		return nil, ErrMissingFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hashService.HashPassword(params.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: hash,
		Balance:      0,
		IsActive:     true,
		IsAdmin:      false,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Created user %s (%s)", created.ID, created.Email))
	return created, nil
}

// UpdateUser rewrites the user's profile fields; the password is re-hashed
// only when a new one is supplied.
func (s *Service) UpdateUser(ctx context.Context, id string, params UserParams) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !params.complete() {
		return nil, ErrMissingFields
	}

	if user.Email != params.Email {
		existing, err := s.userRepo.FindByEmail(ctx, params.Email)
		if err != nil {
			zap.L().Error("can't find user by email", zap.Error(err))
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
	}

	user.FirstName = params.FirstName
	user.LastName = params.LastName
	user.Email = params.Email
	user.Phone = params.Phone

	if strings.TrimSpace(params.Password) != "" {
		hash, err := s.hashService.HashPassword(params.Password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Updated user %s", id))
	return updated, nil
}

// DeleteUser refuses to orphan financial records: users with boards, a
// positive balance or any transactions cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	boards, _, err := s.boardRepo.CountByUserID(ctx, id)
	if err != nil {
		return err
	}
	if boards > 0 {
		return ErrUserHasBoards
	}
	if user.Balance > 0 {
		return ErrUserHasBalance
	}
	transactions, err := s.balanceRepo.CountByUserID(ctx, id)
	if err != nil {
		return err
	}
	if transactions > 0 {
		return ErrUserHasTransactions
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}

	s.log(ctx, fmt.Sprintf("Deleted user %s (%s)", id, user.Email))
	return nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) SearchByPhone(ctx context.Context, phone string) ([]domain.User, error) {
	users, err := s.userRepo.SearchByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("failed to search users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UserDetails aggregates a user's profile with board and transaction stats.
type UserDetails struct {
	User               domain.User
	TotalBoards        int
	WinningBoards      int
	TotalTransactions  int
	Boards             []domain.Board
	RecentTransactions []domain.BalanceLog
}

func (s *Service) GetUserDetails(ctx context.Context, id string) (*UserDetails, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totalBoards, wins, err := s.boardRepo.CountByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	boards, err := s.boardRepo.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.balanceRepo.CountByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	recent, err := s.balanceRepo.RecentByUserID(ctx, id, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &UserDetails{
		User:               *user,
		TotalBoards:        totalBoards,
		WinningBoards:      wins,
		TotalTransactions:  transactions,
		Boards:             boards,
		RecentTransactions: recent,
	}, nil
}

func (s *Service) ToggleActive(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.setActive(ctx, id, !user.IsActive)
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.setActive(ctx, id, active)
}

func (s *Service) setActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	updated, err := s.userRepo.SetActive(ctx, id, active)
	if err != nil {
		zap.L().Error("can't set user active status", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Set user %s active=%t", id, active))
	return updated, nil
}

func (s *Service) SetAdmin(ctx context.Context, id string, admin bool) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updated, err := s.userRepo.SetAdmin(ctx, id, admin)
	if err != nil {
		zap.L().Error("can't set user admin status", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Set user %s admin=%t", id, admin))
	return updated, nil
}

func (s *Service) log(ctx context.Context, content string) {
	if _, err := s.history.CreateLog(ctx, content); err != nil {
		zap.L().Warn("can't write history log", zap.Error(err))
	}
}
