package response

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type RefundResponse struct {
	RefundID string `json:"refundId"`
}
