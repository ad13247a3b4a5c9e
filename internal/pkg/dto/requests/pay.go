package requests

type PayBill struct {
	BillID string `json:"billId" validate:"required"`
	// Amount overrides the stored bill amount when set.
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type CreateCheckout struct {
	BillID string `json:"billId" validate:"required"`
}

// CreatePaymentIntent and CreateCheckoutSession are the provider-facing
// payloads consumed by the payment gateway adapter. Amounts are in the
// smallest currency unit.
type CreatePaymentIntent struct {
	AmountMinorUnits int64
	Currency         string
	Metadata         map[string]string
}

type CreateCheckoutSession struct {
	AmountMinorUnits int64
	Currency         string
	ProductLabel     string
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]string
}
