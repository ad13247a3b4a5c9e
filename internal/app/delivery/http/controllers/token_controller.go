package controllers

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type TokenController struct {
	Log            *zap.Logger
	TokenSequencer contracts.TokenSequencer
}

var (
	tokenControllerInstance *TokenController
	onceTokenController     sync.Once
)

func NewTokenController(logger *zap.Logger, tokenSequencer contracts.TokenSequencer) *TokenController {
	onceTokenController.Do(func() {
		tokenControllerInstance = &TokenController{
			Log:            logger,
			TokenSequencer: tokenSequencer,
		}
	})
	return tokenControllerInstance
}

func (ctrl *TokenController) NextToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := ctrl.TokenSequencer.NextToken(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenGeneratedSuccess, responses.NextToken{Token: token})
}

func (ctrl *TokenController) ListTokens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := ctrl.TokenSequencer.ListTokens(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenListSuccess, entries)
}
