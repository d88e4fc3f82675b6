package utils

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func collapseWhiteSpace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.Email = NormalizeEmail(input.Email)
	input.Patient = collapseWhiteSpace(input.Patient)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Treatment = strings.TrimSpace(input.Treatment)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.Slot = strings.TrimSpace(input.Slot)
}

func SanitizeConfirmPaymentRequest(input *requests.ConfirmPayment) {
	input.BookingID = strings.TrimSpace(input.BookingID)
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeUpsertUserRequest(input *requests.UpsertUser) {
	input.Email = NormalizeEmail(input.Email)
	input.Name = collapseWhiteSpace(input.Name)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = collapseWhiteSpace(input.Name)
	input.Email = NormalizeEmail(input.Email)
	input.Specialty = strings.TrimSpace(input.Specialty)
}
