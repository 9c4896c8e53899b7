package historyservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/service/boardservice"
)

type Repo interface {
	Create(ctx context.Context, log *domain.HistoryLog) (*domain.HistoryLog, error)
	FindAll(ctx context.Context) ([]domain.HistoryLog, error)
	Delete(ctx context.Context, id string) error
	FindBoardHistoryByUserID(ctx context.Context, userID string) ([]domain.BoardHistoryEntry, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateLog(ctx context.Context, content string) (*domain.HistoryLog, error) {
	log := &domain.HistoryLog{
		ID:      uuid.NewString(),
		Content: content,
	}
	createdLog, err := s.repo.Create(ctx, log)
	if err != nil {
		zap.L().Error("can't create history log", zap.Error(err))
		return nil, err
	}
	return createdLog, nil
}

func (s *Service) GetAllLogs(ctx context.Context) ([]domain.HistoryLog, error) {
	logs, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get history logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (s *Service) DeleteLog(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete history log", zap.Error(err))
		return err
	}
	return nil
}

// GetUserBoardHistory returns the user's boards denormalized with their
// owning game, so clients don't have to cross-reference games.
func (s *Service) GetUserBoardHistory(ctx context.Context, userID string) ([]domain.BoardHistoryEntry, error) {
	entries, err := s.repo.FindBoardHistoryByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get board history", zap.Error(err))
		return nil, err
	}
	for i := range entries {
		price, err := boardservice.Price(len(entries[i].SelectedNumbers))
		if err == nil {
			entries[i].Price = price
		}
	}
	return entries, nil
}
