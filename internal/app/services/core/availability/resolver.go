package availability

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/responses"
)

// SubtractBookedSlots returns the labels of full that are not in booked,
// keeping the order and any duplicates of full.
func SubtractBookedSlots(full, booked []string) []string {
	remaining := make([]string, 0, len(full))
	if len(booked) == 0 {
		return append(remaining, full...)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}
	for _, slot := range full {
		if _, ok := taken[slot]; ok {
			continue
		}
		remaining = append(remaining, slot)
	}
	return remaining
}

// GroupBookedSlotsByTreatment indexes booking slot labels by treatment name.
func GroupBookedSlotsByTreatment(bookings []models.Booking) map[string][]string {
	grouped := make(map[string][]string)
	for _, booking := range bookings {
		grouped[booking.Treatment] = append(grouped[booking.Treatment], booking.Slot)
	}
	return grouped
}

func buildAvailableTreatment(option models.TreatmentOption, booked []string) responses.AvailableTreatment {
	var id string
	if !option.ID.IsZero() {
		id = option.ID.Hex()
	}
	return responses.AvailableTreatment{
		ID:    id,
		Name:  option.Name,
		Price: option.Price,
		Slots: SubtractBookedSlots(option.Slots, booked),
	}
}
