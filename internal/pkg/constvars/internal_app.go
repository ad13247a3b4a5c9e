package constvars

type contextKey string

const (
	ContextIdentityKey contextKey = "identity"
)

const (
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
)

const (
	MongoCollectionPatients      = "patients"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionBills         = "bills"
	MongoCollectionHistories     = "histories"
)

const (
	URLParamPatientID      = "patient_id"
	URLParamBillID         = "bill_id"
	URLParamPrescriptionID = "prescription_id"
)

const (
	// WebhookBillLockKeyFormat serializes concurrent provider deliveries
	// for the same bill.
	WebhookBillLockKeyFormat = "webhook:bill:%s"

	PaymentMetadataBillIDKey = "billId"

	WebhookEventCheckoutSessionCompleted = "checkout.session.completed"
)
