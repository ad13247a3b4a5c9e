package controllers

import (
	"clinicdesk-service/internal/app/contracts"
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

type BillController struct {
	Log         *zap.Logger
	BillUsecase contracts.BillUsecase
}

var (
	billControllerInstance *BillController
	onceBillController     sync.Once
)

func NewBillController(logger *zap.Logger, billUsecase contracts.BillUsecase) *BillController {
	onceBillController.Do(func() {
		billControllerInstance = &BillController{
			Log:         logger,
			BillUsecase: billUsecase,
		}
	})
	return billControllerInstance
}

func (ctrl *BillController) CreateBill(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBill)
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

	bill, err := ctrl.BillUsecase.CreateBill(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("bill created",
		zap.String("billId", bill.BillID),
		zap.String("patientId", bill.PatientID),
		zap.Float64("amount", bill.Amount),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BillCreatedSuccess, bill)
}

func (ctrl *BillController) ListBills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bills, err := ctrl.BillUsecase.ListBills(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillListSuccess, bills)
}

func (ctrl *BillController) GetBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bill, err := ctrl.BillUsecase.GetBill(ctx, billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillGetSuccess, bill)
}

func (ctrl *BillController) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	request := new(requests.UpdateBill)
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

	bill, err := ctrl.BillUsecase.UpdateBill(ctx, billID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillUpdatedSuccess, bill)
}

func (ctrl *BillController) UpsertBill(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertBill)
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

	bill, err := ctrl.BillUsecase.UpsertForPatient(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillUpdatedSuccess, bill)
}

func (ctrl *BillController) MarkPaidViaCash(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bill, err := ctrl.BillUsecase.MarkPaidViaCashFlow(ctx, billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("bill settled in cash", zap.String("billId", bill.BillID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillPaidSuccess, bill)
}

func (ctrl *BillController) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PayBill)
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

	intent, err := ctrl.BillUsecase.InitiatePayment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("payment initiated",
		zap.String("billId", request.BillID),
		zap.String("paymentIntentId", intent.PaymentIntentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillPaymentInitiated, intent)
}

func (ctrl *BillController) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCheckout)
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

	session, err := ctrl.BillUsecase.CreateCheckoutSession(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillCheckoutCreated, session)
}

func (ctrl *BillController) DeleteBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, constvars.URLParamBillID)
	if billID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBillID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.BillUsecase.DeleteBill(ctx, billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("bill cascade delete completed",
		zap.String("billId", billID),
		zap.String("deletedPatient", deleted.DeletedPatient),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillDeletedSuccess, deleted)
}
