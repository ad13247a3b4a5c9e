package responses

type PaymentIntent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
	RequiresAction  bool   `json:"requiresAction"`
}

type CheckoutSession struct {
	URL string `json:"url"`
}

// WebhookEvent is the provider event after signature verification, reduced
// to the fields this service acts on.
type WebhookEvent struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	BillID string `json:"billId"`
}
