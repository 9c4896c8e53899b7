package boardservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/pg"
	"github.com/deadpigeons/server/pkg/validate"
)

type BoardRepo interface {
	Create(ctx context.Context, board *domain.Board) (*domain.Board, error)
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Board, error)
	FindActiveByUserID(ctx context.Context, userID string) ([]domain.Board, error)
	FindAllWithOwner(ctx context.Context) ([]domain.BoardWithOwner, error)
	FindByGameIDWithOwner(ctx context.Context, gameID string) ([]domain.BoardWithOwner, error)
	UpdateRepeat(ctx context.Context, id string, repeat bool) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID string, delta float64) (float64, error)
}

type GameRepo interface {
	FindActive(ctx context.Context) (*domain.Game, error)
}

type HistoryLogger interface {
	CreateLog(ctx context.Context, content string) (*domain.HistoryLog, error)
}

// Cutoff describes the weekly window from which purchases are refused.
type Cutoff struct {
	Location *time.Location
	Weekday  time.Weekday
	Hour     int
}

type Service struct {
	boardRepo BoardRepo
	userRepo  UserRepo
	gameRepo  GameRepo
	txManager pg.TXManager
	history   HistoryLogger
	cutoff    Cutoff
	now       func() time.Time
}

func New(boardRepo BoardRepo, userRepo UserRepo, gameRepo GameRepo, txManager pg.TXManager, history HistoryLogger, cutoff Cutoff) *Service {
	return &Service{
		boardRepo: boardRepo,
		userRepo:  userRepo,
		gameRepo:  gameRepo,
		txManager: txManager,
		history:   history,
		cutoff:    cutoff,
		now:       time.Now,
	}
}

var (
	ErrNoActiveGame      = errors.New("no active game available")
	ErrGameClosed        = errors.New("cannot purchase boards after winning numbers have been drawn")
	ErrWeekendCutoff     = errors.New("purchases are closed for this week's game")
	ErrUserNotFound      = errors.New("user not found")
	ErrInactiveUser      = errors.New("user account is inactive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBoardNotFound     = errors.New("board not found")
)

func (s *Service) inCutoffWindow() bool {
	now := s.now().In(s.cutoff.Location)
	return now.Weekday() == s.cutoff.Weekday && now.Hour() >= s.cutoff.Hour
}

// CreateBoard purchases a board against the active game and debits the
// owner's balance, both in one transaction. System renewals (repeat boards
// carried into a new game) bypass the weekend cutoff.
func (s *Service) CreateBoard(ctx context.Context, userID string, numbers []int32, repeat, systemRenewal bool) (*domain.Board, error) {
	if err := validate.Numbers(numbers); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("can't find active game", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrNoActiveGame
	}

	if !systemRenewal && s.inCutoffWindow() {
		return nil, ErrWeekendCutoff
	}

	if len(game.WinningNumbers) > 0 {
		return nil, ErrGameClosed
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	price, err := Price(len(numbers))
	if err != nil {
		return nil, err
	}
	if user.Balance < price {
		return nil, ErrInsufficientFunds
	}

	board := &domain.Board{
		ID:              uuid.NewString(),
		UserID:          userID,
		GameID:          game.ID,
		SelectedNumbers: numbers,
		Winner:          false,
		Repeat:          repeat,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.boardRepo.Create(ctx, board); err != nil {
			return err
		}
		if _, err := s.userRepo.AdjustBalance(ctx, userID, -price); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create board", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Created board %s for user %s (%d numbers, %.0f DKK)", board.ID, userID, len(numbers), price))
	return board, nil
}

func (s *Service) GetBoardsByUser(ctx context.Context, userID string) ([]domain.Board, error) {
	boards, err := s.boardRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

func (s *Service) GetActiveBoardsByUser(ctx context.Context, userID string) ([]domain.Board, error) {
	boards, err := s.boardRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get active boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

func (s *Service) GetAllBoards(ctx context.Context) ([]domain.BoardWithOwner, error) {
	boards, err := s.boardRepo.FindAllWithOwner(ctx)
	if err != nil {
		zap.L().Error("failed to get all boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

func (s *Service) GetBoardByID(ctx context.Context, id string) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get board", zap.Error(err))
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// GetBoardsForGame returns the game's boards with owner contact details,
// winners first.
func (s *Service) GetBoardsForGame(ctx context.Context, gameID string) ([]domain.BoardWithOwner, error) {
	boards, err := s.boardRepo.FindByGameIDWithOwner(ctx, gameID)
	if err != nil {
		zap.L().Error("failed to get boards for game", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

// DeleteBoard removes a board and refunds its price to the owner. The refund
// is unconditional, also for boards on already-drawn games.
func (s *Service) DeleteBoard(ctx context.Context, id string) error {
	board, err := s.boardRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find board", zap.Error(err))
		return err
	}
	if board == nil {
		return ErrBoardNotFound
	}

	refund, err := Price(len(board.SelectedNumbers))
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.AdjustBalance(ctx, board.UserID, refund); err != nil {
			return err
		}
		return s.boardRepo.Delete(ctx, id)
	})
	if err != nil {
		zap.L().Error("can't delete board", zap.Error(err))
		return err
	}

	s.log(ctx, fmt.Sprintf("Deleted board %s, refunded %.0f DKK to user %s", id, refund, board.UserID))
	return nil
}

func (s *Service) ToggleRepeat(ctx context.Context, id string, repeat bool) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find board", zap.Error(err))
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	updated, err := s.boardRepo.UpdateRepeat(ctx, id, repeat)
	if err != nil {
		zap.L().Error("can't update repeat flag", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Set repeat=%t on board %s", repeat, id))
	return updated, nil
}

// ValidationResult is the outcome of a price quote without a purchase.
type ValidationResult struct {
	IsValid        bool
	ErrorMessage   string
	Price          float64
	NumberOfFields int
}

// ValidateBoard checks a selection and quotes its price without creating a
// board.
func (s *Service) ValidateBoard(numbers []int32) *ValidationResult {
	if err := validate.Numbers(numbers); err != nil {
		return &ValidationResult{IsValid: false, ErrorMessage: err.Error()}
	}
	price, _ := Price(len(numbers))
	return &ValidationResult{
		IsValid:        true,
		Price:          price,
		NumberOfFields: len(numbers),
	}
}

// log writes an audit record; failures must not fail the parent operation.
func (s *Service) log(ctx context.Context, content string) {
	if _, err := s.history.CreateLog(ctx, content); err != nil {
		zap.L().Warn("can't write history log", zap.Error(err))
	}
}
