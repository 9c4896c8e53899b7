package history

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deadpigeons/server/internal/domain"
	"github.com/deadpigeons/server/internal/dto"
	"github.com/deadpigeons/server/pkg/utils"
)

type Service interface {
	GetAllLogs(ctx context.Context) ([]domain.HistoryLog, error)
	DeleteLog(ctx context.Context, id string) error
	GetUserBoardHistory(ctx context.Context, userID string) ([]domain.BoardHistoryEntry, error)
}

type HistoryHandler struct {
	historyService Service
}

func New(historyService Service) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetAllLogs godoc
//
//	@Summary	List the audit log, newest first
//	@Tags		History
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.HistoryLogResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/history/all [get]
func (h *HistoryHandler) GetAllLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.historyService.GetAllLogs(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	response := make([]dto.HistoryLogResponseDTO, len(logs))
	for i := range logs {
		response[i] = dto.HistoryLogResponseDTO{
			ID:        logs[i].ID,
			Content:   logs[i].Content,
			CreatedAt: logs[i].CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteLog godoc
//
//	@Summary	Delete one audit log entry
//	@Tags		History
//	@Security	BearerAuth
//	@Produce	json
//	@Param		logId	path		string	true	"Log ID"
//	@Success	200		{object}	utils.Response
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/history/{logId} [delete]
func (h *HistoryHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logID := chi.URLParam(r, "logId")

	if err := h.historyService.DeleteLog(r.Context(), logID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete log")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Log deleted"})
}

// GetUserBoardHistory godoc
//
//	@Summary	List a user's boards joined with their games
//	@Tags		History
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{array}		dto.BoardHistoryResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/history/user/{userId} [get]
func (h *HistoryHandler) GetUserBoardHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	entries, err := h.historyService.GetUserBoardHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch board history")
		return
	}
	response := make([]dto.BoardHistoryResponseDTO, len(entries))
	for i := range entries {
		response[i] = dto.BoardHistoryResponseDTO{
			BoardID:         entries[i].BoardID,
			UserID:          entries[i].UserID,
			SelectedNumbers: entries[i].SelectedNumbers,
			Winner:          entries[i].Winner,
			Price:           entries[i].Price,
			WeekNumber:      entries[i].WeekNumber,
			WinningNumbers:  entries[i].WinningNumbers,
			DrawDate:        entries[i].DrawDate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
