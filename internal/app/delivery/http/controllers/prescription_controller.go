package controllers

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
	})
	return prescriptionControllerInstance
}

func identityFromContext(r *http.Request) (*models.Identity, bool) {
	identity, ok := r.Context().Value(constvars.ContextIdentityKey).(*models.Identity)
	return identity, ok
}

func (ctrl *PrescriptionController) SubmitPrescription(w http.ResponseWriter, r *http.Request) {
	doctor, ok := identityFromContext(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.SubmitPrescription)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.Submit(ctx, doctor, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("prescription submitted",
		zap.String("prescriptionId", prescription.ID),
		zap.String("patientId", prescription.PatientID),
		zap.String("doctorId", prescription.DoctorID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, prescription)
}

func (ctrl *PrescriptionController) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescriptions, err := ctrl.PrescriptionUsecase.ListPrescriptions(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionListSuccess, prescriptions)
}

func (ctrl *PrescriptionController) GetPrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPrescriptionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.GetPrescription(ctx, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionGetSuccess, prescription)
}

func (ctrl *PrescriptionController) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	doctor, ok := identityFromContext(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPrescriptionID))
		return
	}

	request := new(requests.UpdatePrescription)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.UpdatePrescription(ctx, doctor, prescriptionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionUpdatedSuccess, prescription)
}

func (ctrl *PrescriptionController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPrescriptionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PrescriptionUsecase.DeletePrescription(ctx, prescriptionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDeletedSuccess, nil)
}
