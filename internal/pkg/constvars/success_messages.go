package constvars

const (
	ResponseUnknown = "unknown"

	PatientRegisteredSuccess = "patient registered successfully"
	PatientListSuccess       = "patients retrieved successfully"
	PatientGetSuccess        = "patient retrieved successfully"
	PatientUpdatedSuccess    = "patient updated successfully"
	PatientDeletedSuccess    = "patient deleted"

	TokenGeneratedSuccess = "token generated successfully"
	TokenListSuccess      = "tokens retrieved successfully"

	PrescriptionCreatedSuccess = "prescription submitted successfully"
	PrescriptionListSuccess    = "prescriptions retrieved successfully"
	PrescriptionGetSuccess     = "prescription retrieved successfully"
	PrescriptionUpdatedSuccess = "prescription updated successfully"
	PrescriptionDeletedSuccess = "prescription deleted"

	BillCreatedSuccess   = "bill created successfully"
	BillListSuccess      = "bills retrieved successfully"
	BillGetSuccess       = "bill retrieved successfully"
	BillUpdatedSuccess   = "bill updated successfully"
	BillPaidSuccess      = "bill marked as paid"
	BillDeletedSuccess   = "bill and associated patient data deleted successfully"
	BillPaymentInitiated = "payment initiated successfully"
	BillCheckoutCreated  = "checkout session created successfully"

	HistoryListSuccess = "history retrieved successfully"

	WebhookReceivedSuccess = "received"
)
