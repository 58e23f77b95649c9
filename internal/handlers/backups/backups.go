package backups

import (
	"context"
	"net/http"

	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/handlers/common"
	"github.com/kboat10/babs10/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID string) ([]string, error)
	Restore(ctx context.Context, userID, file string) (int, error)
}

type BackupHandler struct {
	backupService Service
}

func New(backupService Service) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// ListBackups godoc
//
//	@Summary		List ledger backups
//	@Description	Backup files of the authenticated user, newest first
//	@Tags			Backups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BackupListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/backups [get]
func (h *BackupHandler) ListBackups(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	files, err := h.backupService.List(r.Context(), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BackupListResponseDTO{Files: files})
}

// RestoreBackup godoc
//
//	@Summary		Restore ledger from backup
//	@Description	Replace every customer of the authenticated user with the contents of one backup file
//	@Tags			Backups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RestoreRequestDTO	true	"Backup file name"
//	@Success		200		{object}	dto.RestoreResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Backup not found"
//	@Failure		422		{object}	utils.Response	"Backup is not a valid ledger"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/backups/restore [post]
func (h *BackupHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.RestoreRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	restored, err := h.backupService.Restore(r.Context(), userID, req.File)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RestoreResponseDTO{Message: "Ledger restored", Customers: restored})
}
