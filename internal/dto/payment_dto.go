package dto

// MidtransNotificationRequest is the gateway's HTTP notification body.
type MidtransNotificationRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionId     string `json:"transaction_id"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type PaymentNotificationResponse struct {
	OrderId string `json:"orderId"`
	Outcome string `json:"outcome"`
}
