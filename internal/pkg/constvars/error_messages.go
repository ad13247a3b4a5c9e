package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or expired, please login again"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"

	ErrClientPatientNotFound      = "Patient not found"
	ErrClientBillNotFound         = "Bill not found"
	ErrClientPrescriptionNotFound = "Prescription not found"

	ErrClientTokenNumberTaken      = "Token number already exists"
	ErrClientBillAlreadyPaid       = "Bill already paid"
	ErrClientPatientAlreadyTreated = "Token cannot be deleted. Already prescription provided by doctor."
	ErrClientInvalidBillStatus     = "Bill status must be one of pending, paid or failed"

	ErrClientPaymentFailed         = "Payment failed"
	ErrClientInvalidWebhookPayload = "Webhook payload could not be verified"
	ErrClientArchivalFailed        = "Payment could not be finalized, the visit record is incomplete"
)

// Developer-facing messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevReadBody                   = "failed to read request body"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevRoleTypeDoesntMatch       = "identity role does not match the required role"

	ErrDevPatientNotExists      = "patient does not exist"
	ErrDevBillNotExists         = "bill does not exist"
	ErrDevPrescriptionNotExists = "prescription does not exist"

	ErrDevTokenNumberConflict   = "tokenNumber unique index rejected the write"
	ErrDevBillIDConflict        = "billId unique index rejected the write"
	ErrDevPatientAlreadyTreated = "patient has prescriptions and cannot be deleted directly"
	ErrDevBillAlreadyPaid       = "bill is already in the paid state"
	ErrDevInvalidBillStatus     = "bill status outside the allowed enumeration"

	ErrDevPaymentProviderRejected = "payment provider rejected the request"
	ErrDevWebhookSignatureInvalid = "webhook signature verification failed"
	ErrDevArchivalFailed          = "archival of the paid bill failed, transition aborted"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	ErrDevRedisFailedToSet    = "redis failed to set key"
	ErrDevRedisFailedToGet    = "redis failed to get key"
	ErrDevRedisFailedToDelete = "redis failed to delete key"
)
