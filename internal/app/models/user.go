package models

import (
	"clinic-booking-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == constvars.RoleAdmin
}
