package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Payment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BookingID     string             `json:"bookingId" bson:"bookingId"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	TimeModel     `bson:",inline"`
}
