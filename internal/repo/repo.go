package repo

import (
	"github.com/deadpigeons/server/internal/pg"
	balancerepo "github.com/deadpigeons/server/internal/repo/balance-repo"
	boardrepo "github.com/deadpigeons/server/internal/repo/board-repo"
	gamerepo "github.com/deadpigeons/server/internal/repo/game-repo"
	historyrepo "github.com/deadpigeons/server/internal/repo/history-repo"
	userrepo "github.com/deadpigeons/server/internal/repo/user-repo"
)

// Repositories holds the concrete repositories; each service narrows them
// down to the interface it consumes.
type Repositories struct {
	UserRepo    *userrepo.Repository
	GameRepo    *gamerepo.Repository
	BoardRepo   *boardrepo.Repository
	BalanceRepo *balancerepo.Repository
	HistoryRepo *historyrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		GameRepo:    gamerepo.New(conn),
		BoardRepo:   boardrepo.New(conn),
		BalanceRepo: balancerepo.New(conn),
		HistoryRepo: historyrepo.New(conn),
	}
}
