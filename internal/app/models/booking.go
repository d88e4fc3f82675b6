package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Patient         string             `json:"patient,omitempty" bson:"patient,omitempty"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Treatment       string             `json:"treatment" bson:"treatment"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate"`
	Slot            string             `json:"slot" bson:"slot"`
	Price           float64            `json:"price" bson:"price"`
	Paid            bool               `json:"paid" bson:"paid"`
	TransactionID   string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Cancelled       bool               `json:"cancelled" bson:"cancelled"`
	TimeModel       `bson:",inline"`
}

// BookingAdmittedEvent is emitted after a booking insert commits.
type BookingAdmittedEvent struct {
	BookingID       string    `json:"bookingId"`
	Email           string    `json:"email"`
	Patient         string    `json:"patient,omitempty"`
	Treatment       string    `json:"treatment"`
	AppointmentDate string    `json:"appointmentDate"`
	Slot            string    `json:"slot"`
	Price           float64   `json:"price"`
	AdmittedAt      time.Time `json:"admittedAt"`
}

func (b *Booking) ToAdmittedEvent() *BookingAdmittedEvent {
	return &BookingAdmittedEvent{
		BookingID:       b.ID.Hex(),
		Email:           b.Email,
		Patient:         b.Patient,
		Treatment:       b.Treatment,
		AppointmentDate: b.AppointmentDate,
		Slot:            b.Slot,
		Price:           b.Price,
		AdmittedAt:      b.CreatedAt,
	}
}

// AdmissionResult carries either the admitted booking or the conflict
// message shown to the patient.
type AdmissionResult struct {
	Accepted bool
	Booking  *Booking
	Message  string
}
