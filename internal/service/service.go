package service

import (
	"time"

	"github.com/deadpigeons/server/internal/config"
	"github.com/deadpigeons/server/internal/handlers/auth"
	"github.com/deadpigeons/server/internal/handlers/balance"
	"github.com/deadpigeons/server/internal/handlers/board"
	"github.com/deadpigeons/server/internal/handlers/game"
	"github.com/deadpigeons/server/internal/handlers/history"
	"github.com/deadpigeons/server/internal/handlers/user"

	pkgauth "github.com/deadpigeons/server/pkg/auth"

	"github.com/deadpigeons/server/internal/pg"
	"github.com/deadpigeons/server/internal/repo"
	authservice "github.com/deadpigeons/server/internal/service/authservice"
	balanceservice "github.com/deadpigeons/server/internal/service/balanceservice"
	boardservice "github.com/deadpigeons/server/internal/service/boardservice"
	gameservice "github.com/deadpigeons/server/internal/service/gameservice"
	historyservice "github.com/deadpigeons/server/internal/service/historyservice"
	userservice "github.com/deadpigeons/server/internal/service/userservice"
)

type Services struct {
	AuthService    auth.Service
	UserService    user.Service
	GameService    game.Service
	BoardService   board.Service
	BalanceService balance.Service
	HistoryService history.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	historyService := historyservice.New(repo.HistoryRepo)
	boardService := boardservice.New(repo.BoardRepo, repo.UserRepo, repo.GameRepo, txManager, historyService, boardservice.Cutoff{
		Location: cfg.CutoffLocation(),
		Weekday:  time.Weekday(cfg.CutoffWeekday),
		Hour:     cfg.CutoffHour,
	})
	gameService := gameservice.New(repo.GameRepo, repo.BoardRepo, boardService, txManager, historyService)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.UserRepo, txManager, historyService)
	userService := userservice.New(repo.UserRepo, repo.BoardRepo, repo.BalanceRepo, &pkgauth.HashService{}, historyService)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		GameService:    gameService,
		BoardService:   boardService,
		BalanceService: balanceService,
		HistoryService: historyService,
	}
}
