package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (t *TimeModel) SetCreatedAt() {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
}
