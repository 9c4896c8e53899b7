package board

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/internal/service/boardservice"
	"github.com/deadpigeons/server/pkg/auth"
	"github.com/deadpigeons/server/pkg/utils"
	"github.com/deadpigeons/server/pkg/validate"
)

type Service interface {
	CreateBoard(ctx context.Context, userID string, numbers []int32, repeat, systemRenewal bool) (*domain.Board, error)
	GetBoardsByUser(ctx context.Context, userID string) ([]domain.Board, error)
	GetActiveBoardsByUser(ctx context.Context, userID string) ([]domain.Board, error)
	GetAllBoards(ctx context.Context) ([]domain.BoardWithOwner, error)
	GetBoardByID(ctx context.Context, id string) (*domain.Board, error)
	GetBoardsForGame(ctx context.Context, gameID string) ([]domain.BoardWithOwner, error)
	DeleteBoard(ctx context.Context, id string) error
	ToggleRepeat(ctx context.Context, id string, repeat bool) (*domain.Board, error)
	ValidateBoard(numbers []int32) *boardservice.ValidationResult
}

type BoardHandler struct {
	boardService Service
}

func New(boardService Service) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

func boardToDTO(board *domain.Board) dto.BoardResponseDTO {
	return dto.BoardResponseDTO{
		ID:              board.ID,
		UserID:          board.UserID,
		GameID:          board.GameID,
		SelectedNumbers: board.SelectedNumbers,
		Winner:          board.Winner,
		Repeat:          board.Repeat,
		CreatedAt:       board.CreatedAt,
	}
}

func boardsToDTO(boards []domain.Board) []dto.BoardResponseDTO {
	response := make([]dto.BoardResponseDTO, len(boards))
	for i := range boards {
		response[i] = boardToDTO(&boards[i])
	}
	return response
}

func boardsWithOwnerToDTO(boards []domain.BoardWithOwner) []dto.BoardWithOwnerResponseDTO {
	response := make([]dto.BoardWithOwnerResponseDTO, len(boards))
	for i := range boards {
		response[i] = dto.BoardWithOwnerResponseDTO{
			BoardResponseDTO: boardToDTO(&boards[i].Board),
			OwnerName:        boards[i].OwnerName,
			OwnerPhone:       boards[i].OwnerPhone,
		}
	}
	return response
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrSelectionSize),
		errors.Is(err, validate.ErrOutOfRange),
		errors.Is(err, validate.ErrDuplicateNumber),
		errors.Is(err, boardservice.ErrInvalidSelectionSize):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, boardservice.ErrBoardNotFound),
		errors.Is(err, boardservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, boardservice.ErrNoActiveGame),
		errors.Is(err, boardservice.ErrGameClosed),
		errors.Is(err, boardservice.ErrWeekendCutoff):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, boardservice.ErrInactiveUser):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, boardservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateBoard godoc
//
//	@Summary		Purchase a board
//	@Description	Buy a board with 5-8 numbers against the active game; the price is debited from the balance
//	@Tags			Boards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBoardRequestDTO	true	"Board purchase payload"
//	@Success		200		{object}	dto.BoardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid selection"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		409		{object}	utils.Response	"No active game, game closed or purchases cut off"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/board/create [post]
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateBoardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), userID, req.SelectedNumbers, req.Repeat, false)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardToDTO(board))
}

// GetBoardsByUser godoc
//
//	@Summary	Get a user's boards
//	@Tags		Boards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{array}		dto.BoardResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/board/user/{userId} [get]
func (h *BoardHandler) GetBoardsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	boards, err := h.boardService.GetBoardsByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch boards")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardsToDTO(boards))
}

// GetActiveBoardsByUser godoc
//
//	@Summary	Get a user's boards on the active game
//	@Tags		Boards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{array}		dto.BoardResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/board/user/{userId}/active [get]
func (h *BoardHandler) GetActiveBoardsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	boards, err := h.boardService.GetActiveBoardsByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch boards")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardsToDTO(boards))
}

// GetAllBoards godoc
//
//	@Summary	Get all boards with owner names
//	@Tags		Boards
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.BoardWithOwnerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/board/all [get]
func (h *BoardHandler) GetAllBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.GetAllBoards(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch boards")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardsWithOwnerToDTO(boards))
}

// GetBoardByID godoc
//
//	@Summary	Get one board
//	@Tags		Boards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		boardId	path		string	true	"Board ID"
//	@Success	200		{object}	dto.BoardResponseDTO
//	@Failure	404		{object}	utils.Response	"Board not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/board/{boardId} [get]
func (h *BoardHandler) GetBoardByID(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardId")

	board, err := h.boardService.GetBoardByID(r.Context(), boardID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardToDTO(board))
}

// GetBoardsForGame godoc
//
//	@Summary	Get a game's boards, winners first
//	@Tags		Boards
//	@Security	BearerAuth
//	@Produce	json
//	@Param		gameId	path		string	true	"Game ID"
//	@Success	200		{array}		dto.BoardWithOwnerResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/board/game/{gameId} [get]
func (h *BoardHandler) GetBoardsForGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")

	boards, err := h.boardService.GetBoardsForGame(r.Context(), gameID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch boards")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardsWithOwnerToDTO(boards))
}

// DeleteBoard godoc
//
//	@Summary		Delete a board
//	@Description	Remove a board and refund its price to the owner
//	@Tags			Boards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			boardId	path		string	true	"Board ID"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Board not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/board/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardId")

	if err := h.boardService.DeleteBoard(r.Context(), boardID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Board deleted and refunded"})
}

// ToggleRepeat godoc
//
//	@Summary	Set a board's repeat flag
//	@Tags		Boards
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		boardId	path		string					true	"Board ID"
//	@Param		request	body		dto.ToggleRepeatRequestDTO	true	"Repeat flag"
//	@Success	200		{object}	dto.BoardResponseDTO
//	@Failure	404		{object}	utils.Response	"Board not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/board/{boardId}/repeat [patch]
func (h *BoardHandler) ToggleRepeat(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardId")

	var req dto.ToggleRepeatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.boardService.ToggleRepeat(r.Context(), boardID, req.Repeat)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boardToDTO(board))
}

// ValidateBoard godoc
//
//	@Summary		Validate a selection and quote its price
//	@Description	Check a number selection against the game rules without purchasing
//	@Tags			Boards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidateBoardRequestDTO	true	"Selection to validate"
//	@Success		200		{object}	dto.ValidateBoardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/board/validate [post]
func (h *BoardHandler) ValidateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateBoardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.boardService.ValidateBoard(req.SelectedNumbers)
	utils.RespondWithJSON(w, http.StatusOK, dto.ValidateBoardResponseDTO{
		IsValid:        result.IsValid,
		ErrorMessage:   result.ErrorMessage,
		Price:          result.Price,
		NumberOfFields: result.NumberOfFields,
	})
}
