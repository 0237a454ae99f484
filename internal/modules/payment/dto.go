package payment

type RecordPaymentRequest struct {
	BookingID     int64   `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	StatusMessage string `json:"status_message"`
}

type RefundRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Reason string  `json:"reason"`
}
