package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TreatmentOption is catalog data; Name doubles as the key bookings refer to.
type TreatmentOption struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
	Slots []string           `json:"slots" bson:"slots"`
}

// OffersSlot reports whether slot is one of the treatment's labels.
func (t *TreatmentOption) OffersSlot(slot string) bool {
	for _, s := range t.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// TreatmentOptionWithBookedSlots is the projection produced by the
// availability aggregation pipeline.
type TreatmentOptionWithBookedSlots struct {
	TreatmentOption `bson:",inline"`
	BookedSlots     []string `bson:"bookedSlots"`
}
