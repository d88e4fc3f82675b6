package requests

type CreateBooking struct {
	Email           string  `json:"email" validate:"required,email"`
	Patient         string  `json:"patient" validate:"omitempty,max=120"`
	Phone           string  `json:"phone" validate:"omitempty,max=32"`
	Treatment       string  `json:"treatment" validate:"required,max=120"`
	AppointmentDate string  `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	Slot            string  `json:"slot" validate:"required,slot_label"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type CancelBooking struct {
	BookingID string `json:"-" validate:"required,object_id"`
	Email     string `json:"-" validate:"required,email"`
}
