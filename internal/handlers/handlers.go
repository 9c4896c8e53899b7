package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/deadpigeons/server/docs"
	authhandlers "github.com/deadpigeons/server/internal/handlers/auth"
	balancehandlers "github.com/deadpigeons/server/internal/handlers/balance"
	boardhandlers "github.com/deadpigeons/server/internal/handlers/board"
	gamehandlers "github.com/deadpigeons/server/internal/handlers/game"
	historyhandlers "github.com/deadpigeons/server/internal/handlers/history"
	userhandlers "github.com/deadpigeons/server/internal/handlers/user"
	"github.com/deadpigeons/server/internal/service"
	pkgauth "github.com/deadpigeons/server/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	GetAllUsers(w http.ResponseWriter, r *http.Request)
	SearchByPhone(w http.ResponseWriter, r *http.Request)
	GetUserDetails(w http.ResponseWriter, r *http.Request)
	ToggleActive(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	SetAdmin(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	DrawWinningNumbers(w http.ResponseWriter, r *http.Request)
	GetCurrentGame(w http.ResponseWriter, r *http.Request)
	GetCurrentGameDetails(w http.ResponseWriter, r *http.Request)
	GetGameHistory(w http.ResponseWriter, r *http.Request)
	GetGameByID(w http.ResponseWriter, r *http.Request)
}

type BoardHandler interface {
	CreateBoard(w http.ResponseWriter, r *http.Request)
	GetBoardsByUser(w http.ResponseWriter, r *http.Request)
	GetActiveBoardsByUser(w http.ResponseWriter, r *http.Request)
	GetAllBoards(w http.ResponseWriter, r *http.Request)
	GetBoardByID(w http.ResponseWriter, r *http.Request)
	GetBoardsForGame(w http.ResponseWriter, r *http.Request)
	DeleteBoard(w http.ResponseWriter, r *http.Request)
	ToggleRepeat(w http.ResponseWriter, r *http.Request)
	ValidateBoard(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	ApproveTransaction(w http.ResponseWriter, r *http.Request)
	GetPendingTransactions(w http.ResponseWriter, r *http.Request)
	GetApprovedTransactions(w http.ResponseWriter, r *http.Request)
	GetAllTransactions(w http.ResponseWriter, r *http.Request)
	GetUserTransactions(w http.ResponseWriter, r *http.Request)
	GetUserBalance(w http.ResponseWriter, r *http.Request)
}

type HistoryHandler interface {
	GetAllLogs(w http.ResponseWriter, r *http.Request)
	DeleteLog(w http.ResponseWriter, r *http.Request)
	GetUserBoardHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	UserHandler    UserHandler
	GameHandler    GameHandler
	BoardHandler   BoardHandler
	BalanceHandler BalanceHandler
	HistoryHandler HistoryHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		UserHandler:    userhandlers.New(s.UserService),
		GameHandler:    gamehandlers.New(s.GameService),
		BoardHandler:   boardhandlers.New(s.BoardService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		HistoryHandler: historyhandlers.New(s.HistoryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Post("/api/auth/login", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(pkgauth.AuthMiddleware)

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/{userId}", h.UserHandler.GetUser)
			r.Put("/{userId}", h.UserHandler.UpdateUser)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminMiddleware)
				r.Get("/all", h.UserHandler.GetAllUsers)
				r.Post("/create", h.UserHandler.CreateUser)
				r.Get("/search", h.UserHandler.SearchByPhone)
				r.Delete("/{userId}", h.UserHandler.DeleteUser)
				r.Get("/{userId}/details", h.UserHandler.GetUserDetails)
				r.Patch("/{userId}/toggle-active", h.UserHandler.ToggleActive)
				r.Patch("/{userId}/set-active", h.UserHandler.SetActive)
				r.Patch("/{userId}/set-admin", h.UserHandler.SetAdmin)
			})
		})

		r.Route("/api/game", func(r chi.Router) {
			r.Get("/current", h.GameHandler.GetCurrentGame)
			r.Get("/history", h.GameHandler.GetGameHistory)
			r.Get("/{gameId}", h.GameHandler.GetGameByID)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminMiddleware)
				r.Post("/create", h.GameHandler.CreateGame)
				r.Get("/current/details", h.GameHandler.GetCurrentGameDetails)
				r.Post("/draw", h.GameHandler.DrawWinningNumbers)
			})
		})

		r.Route("/api/board", func(r chi.Router) {
			r.Post("/create", h.BoardHandler.CreateBoard)
			r.Post("/validate", h.BoardHandler.ValidateBoard)
			r.Get("/user/{userId}", h.BoardHandler.GetBoardsByUser)
			r.Get("/user/{userId}/active", h.BoardHandler.GetActiveBoardsByUser)
			r.Get("/{boardId}", h.BoardHandler.GetBoardByID)
			r.Patch("/{boardId}/repeat", h.BoardHandler.ToggleRepeat)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminMiddleware)
				r.Get("/all", h.BoardHandler.GetAllBoards)
				r.Delete("/{boardId}", h.BoardHandler.DeleteBoard)
				r.Get("/game/{gameId}", h.BoardHandler.GetBoardsForGame)
			})
		})

		r.Route("/api/balance", func(r chi.Router) {
			r.Post("/deposit", h.BalanceHandler.SubmitDeposit)
			r.Get("/user/{userId}/transactions", h.BalanceHandler.GetUserTransactions)
			r.Get("/user/{userId}", h.BalanceHandler.GetUserBalance)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminMiddleware)
				r.Post("/approve", h.BalanceHandler.ApproveTransaction)
				r.Get("/pending", h.BalanceHandler.GetPendingTransactions)
				r.Get("/approved", h.BalanceHandler.GetApprovedTransactions)
				r.Get("/transactions", h.BalanceHandler.GetAllTransactions)
			})
		})

		r.Route("/api/history", func(r chi.Router) {
			r.Get("/user/{userId}", h.HistoryHandler.GetUserBoardHistory)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AdminMiddleware)
				r.Get("/all", h.HistoryHandler.GetAllLogs)
				r.Delete("/{logId}", h.HistoryHandler.DeleteLog)
			})
		})
	})

	return r
}
