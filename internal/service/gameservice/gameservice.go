package gameservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/pg"
)

type GameRepo interface {
	FindActive(ctx context.Context) (*domain.Game, error)
	FindByID(ctx context.Context, id string) (*domain.Game, error)
	FindAll(ctx context.Context) ([]domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Deactivate(ctx context.Context, id string) error
	SetWinningNumbers(ctx context.Context, id string, numbers []int32, drawDate time.Time) error
}

type BoardRepo interface {
	FindByGameID(ctx context.Context, gameID string) ([]domain.Board, error)
	FindRepeatsByGameID(ctx context.Context, gameID string) ([]domain.Board, error)
	FindByGameIDWithOwner(ctx context.Context, gameID string) ([]domain.BoardWithOwner, error)
	UpdateWinner(ctx context.Context, id string, winner bool) error
}

// BoardPurchaser re-purchases repeat boards into a freshly created game.
type BoardPurchaser interface {
	CreateBoard(ctx context.Context, userID string, numbers []int32, repeat, systemRenewal bool) (*domain.Board, error)
}

type HistoryLogger interface {
	CreateLog(ctx context.Context, content string) (*domain.HistoryLog, error)
}

type Service struct {
	gameRepo  GameRepo
	boardRepo BoardRepo
	purchaser BoardPurchaser
	txManager pg.TXManager
	history   HistoryLogger
}

func New(gameRepo GameRepo, boardRepo BoardRepo, purchaser BoardPurchaser, txManager pg.TXManager, history HistoryLogger) *Service {
	return &Service{
		gameRepo:  gameRepo,
		boardRepo: boardRepo,
		purchaser: purchaser,
		txManager: txManager,
		history:   history,
	}
}

var (
	ErrInvalidDraw  = errors.New("pick exactly 3 distinct numbers")
	ErrNoActiveGame = errors.New("no active game found")
	ErrAlreadyDrawn = errors.New("winning numbers have already been drawn for this game")
	ErrGameNotFound = errors.New("game not found")
)

// CreateGame deactivates the current game (if any), creates the next week's
// game and re-purchases every repeat board of the deactivated game into it.
// The whole rollover is one transaction.
func (s *Service) CreateGame(ctx context.Context) (*domain.Game, error) {
	var game *domain.Game
	var carried int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.gameRepo.FindActive(ctx)
		if err != nil {
			return err
		}

		week := 1
		var repeats []domain.Board
		if current != nil {
			week, err = strconv.Atoi(current.WeekNumber)
			if err != nil {
				return fmt.Errorf("bad week number %q: %w", current.WeekNumber, err)
			}
			week++

			repeats, err = s.boardRepo.FindRepeatsByGameID(ctx, current.ID)
			if err != nil {
				return err
			}
			if err := s.gameRepo.Deactivate(ctx, current.ID); err != nil {
				return err
			}
		}

		game = &domain.Game{
			ID:             uuid.NewString(),
			WeekNumber:     strconv.Itoa(week),
			WinningNumbers: []int32{},
			IsActive:       true,
		}
		if _, err := s.gameRepo.Create(ctx, game); err != nil {
			return err
		}

		for _, board := range repeats {
			if _, err := s.purchaser.CreateBoard(ctx, board.UserID, board.SelectedNumbers, true, true); err != nil {
				zap.L().Error("can't carry forward repeat board",
					zap.String("board_id", board.ID), zap.Error(err))
				return err
			}
			carried++
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create game", zap.Error(err))
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Created game %s for week %s (%d repeat boards carried forward)", game.ID, game.WeekNumber, carried))
	return game, nil
}

// DrawWinningNumbers performs the one-shot draw on the active game and marks
// each of its boards as winner or loser. A board wins when every drawn
// number is among its selected numbers.
func (s *Service) DrawWinningNumbers(ctx context.Context, numbers []int32) (*domain.Game, error) {
	if len(numbers) != 3 {
		return nil, ErrInvalidDraw
	}
	seen := make(map[int32]struct{}, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			return nil, ErrInvalidDraw
		}
		seen[n] = struct{}{}
	}

	var game *domain.Game
	var winners int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.gameRepo.FindActive(ctx)
		if err != nil {
			return err
		}
		if game == nil {
			return ErrNoActiveGame
		}
		if len(game.WinningNumbers) > 0 {
			return ErrAlreadyDrawn
		}

		drawDate := time.Now()
		if err := s.gameRepo.SetWinningNumbers(ctx, game.ID, numbers, drawDate); err != nil {
			return err
		}
		game.WinningNumbers = numbers
		game.DrawDate = &drawDate

		boards, err := s.boardRepo.FindByGameID(ctx, game.ID)
		if err != nil {
			return err
		}
		for _, board := range boards {
			winner := containsAll(board.SelectedNumbers, numbers)
			if err := s.boardRepo.UpdateWinner(ctx, board.ID, winner); err != nil {
				return err
			}
			if winner {
				winners++
				zap.L().Info("board is a winner",
					zap.String("board_id", board.ID), zap.String("user_id", board.UserID))
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoActiveGame) && !errors.Is(err, ErrAlreadyDrawn) {
			zap.L().Error("can't draw winning numbers", zap.Error(err))
		}
		return nil, err
	}

	s.log(ctx, fmt.Sprintf("Drew winning numbers %v for game %s, %d winning boards", numbers, game.ID, winners))
	return game, nil
}

func containsAll(selected, winning []int32) bool {
	for _, w := range winning {
		found := false
		for _, n := range selected {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *Service) GetCurrentGame(ctx context.Context) (*domain.Game, error) {
	game, err := s.gameRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get current game", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrNoActiveGame
	}
	return game, nil
}

// Details is a game with its boards and totals.
type Details struct {
	Game          domain.Game
	TotalBoards   int
	TotalWinners  int
	Boards        []domain.BoardWithOwner
	WinningBoards []domain.BoardWithOwner
}

func (s *Service) GetCurrentGameDetails(ctx context.Context) (*Details, error) {
	game, err := s.gameRepo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to get current game", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrNoActiveGame
	}
	return s.details(ctx, game)
}

func (s *Service) GetGameByID(ctx context.Context, id string) (*Details, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get game", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return s.details(ctx, game)
}

func (s *Service) details(ctx context.Context, game *domain.Game) (*Details, error) {
	boards, err := s.boardRepo.FindByGameIDWithOwner(ctx, game.ID)
	if err != nil {
		zap.L().Error("failed to get boards for game", zap.Error(err))
		return nil, err
	}

	details := &Details{
		Game:        *game,
		TotalBoards: len(boards),
		Boards:      boards,
	}
	for _, board := range boards {
		if board.Winner {
			details.TotalWinners++
			details.WinningBoards = append(details.WinningBoards, board)
		}
	}
	return details, nil
}

func (s *Service) GetGameHistory(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get game history", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) log(ctx context.Context, content string) {
	if _, err := s.history.CreateLog(ctx, content); err != nil {
		zap.L().Warn("can't write history log", zap.Error(err))
	}
}
