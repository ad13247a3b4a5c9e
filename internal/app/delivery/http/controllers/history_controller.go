package controllers

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type HistoryController struct {
	Log            *zap.Logger
	ArchiveService contracts.ArchiveService
}

var (
	historyControllerInstance *HistoryController
	onceHistoryController     sync.Once
)

func NewHistoryController(logger *zap.Logger, archiveService contracts.ArchiveService) *HistoryController {
	onceHistoryController.Do(func() {
		historyControllerInstance = &HistoryController{
			Log:            logger,
			ArchiveService: archiveService,
		}
	})
	return historyControllerInstance
}

func (ctrl *HistoryController) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.ArchiveService.ListHistory(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HistoryListSuccess, records)
}
