package requests

type ConfirmPayment struct {
	BookingID     string  `json:"bookingId" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required,max=255"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Price         float64 `json:"price" validate:"gte=0"`
}

type CreatePaymentIntent struct {
	Price float64 `json:"price" validate:"gt=0"`
}
