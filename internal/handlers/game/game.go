package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/internal/service/gameservice"
	"github.com/deadpigeons/server/pkg/utils"
)

type Service interface {
	CreateGame(ctx context.Context) (*domain.Game, error)
	DrawWinningNumbers(ctx context.Context, numbers []int32) (*domain.Game, error)
	GetCurrentGame(ctx context.Context) (*domain.Game, error)
	GetCurrentGameDetails(ctx context.Context) (*gameservice.Details, error)
	GetGameByID(ctx context.Context, id string) (*gameservice.Details, error)
	GetGameHistory(ctx context.Context) ([]domain.Game, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func gameToDTO(game *domain.Game) dto.GameResponseDTO {
	return dto.GameResponseDTO{
		ID:                game.ID,
		WeekNumber:        game.WeekNumber,
		WinningNumbers:    game.WinningNumbers,
		HasWinningNumbers: len(game.WinningNumbers) > 0,
		DrawDate:          game.DrawDate,
		IsActive:          game.IsActive,
		CreatedAt:         game.CreatedAt,
	}
}

func detailsToDTO(details *gameservice.Details) dto.GameDetailsResponseDTO {
	response := dto.GameDetailsResponseDTO{
		GameResponseDTO: gameToDTO(&details.Game),
		TotalBoards:     details.TotalBoards,
		TotalWinners:    details.TotalWinners,
		Boards:          make([]dto.BoardWithOwnerResponseDTO, len(details.Boards)),
		WinningBoards:   make([]dto.BoardWithOwnerResponseDTO, len(details.WinningBoards)),
	}
	for i := range details.Boards {
		response.Boards[i] = boardWithOwnerToDTO(&details.Boards[i])
	}
	for i := range details.WinningBoards {
		response.WinningBoards[i] = boardWithOwnerToDTO(&details.WinningBoards[i])
	}
	return response
}

func boardWithOwnerToDTO(board *domain.BoardWithOwner) dto.BoardWithOwnerResponseDTO {
	return dto.BoardWithOwnerResponseDTO{
		BoardResponseDTO: dto.BoardResponseDTO{
			ID:              board.ID,
			UserID:          board.UserID,
			GameID:          board.GameID,
			SelectedNumbers: board.SelectedNumbers,
			Winner:          board.Winner,
			Repeat:          board.Repeat,
			CreatedAt:       board.CreatedAt,
		},
		OwnerName:  board.OwnerName,
		OwnerPhone: board.OwnerPhone,
	}
}

// CreateGame godoc
//
//	@Summary		Start the next week's game
//	@Description	Deactivate the current game, create the next one and carry repeat boards forward
//	@Tags			Games
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GameResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/game/create [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.CreateGame(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create game")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, gameToDTO(game))
}

// DrawWinningNumbers godoc
//
//	@Summary		Draw the winning numbers
//	@Description	One-shot draw on the active game; marks every board as winner or loser
//	@Tags			Games
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DrawWinningNumbersRequestDTO	true	"Exactly 3 distinct numbers"
//	@Success		200		{object}	dto.GameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid draw"
//	@Failure		409		{object}	utils.Response	"No active game or already drawn"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/game/draw [post]
func (h *GameHandler) DrawWinningNumbers(w http.ResponseWriter, r *http.Request) {
	var req dto.DrawWinningNumbersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	game, err := h.gameService.DrawWinningNumbers(r.Context(), req.WinningNumbers)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrInvalidDraw):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, gameservice.ErrNoActiveGame), errors.Is(err, gameservice.ErrAlreadyDrawn):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, gameToDTO(game))
}

// GetCurrentGame godoc
//
//	@Summary	Get the active game
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.GameResponseDTO
//	@Failure	404	{object}	utils.Response	"No active game"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/game/current [get]
func (h *GameHandler) GetCurrentGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetCurrentGame(r.Context())
	if err != nil {
		if errors.Is(err, gameservice.ErrNoActiveGame) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, gameToDTO(game))
}

// GetCurrentGameDetails godoc
//
//	@Summary	Get the active game with all boards and totals
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.GameDetailsResponseDTO
//	@Failure	404	{object}	utils.Response	"No active game"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/game/current/details [get]
func (h *GameHandler) GetCurrentGameDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.gameService.GetCurrentGameDetails(r.Context())
	if err != nil {
		if errors.Is(err, gameservice.ErrNoActiveGame) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detailsToDTO(details))
}

// GetGameHistory godoc
//
//	@Summary	Get all games, newest first
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.GameResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/game/history [get]
func (h *GameHandler) GetGameHistory(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetGameHistory(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch game history")
		return
	}
	response := make([]dto.GameResponseDTO, len(games))
	for i := range games {
		response[i] = gameToDTO(&games[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGameByID godoc
//
//	@Summary	Get one game with boards and winners
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Param		gameId	path		string	true	"Game ID"
//	@Success	200		{object}	dto.GameDetailsResponseDTO
//	@Failure	404		{object}	utils.Response	"Game not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/game/{gameId} [get]
func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")

	details, err := h.gameService.GetGameByID(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detailsToDTO(details))
}
