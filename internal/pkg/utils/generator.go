package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateDoctorImageObjectName(fileExtension string) string {
	if fileExtension == "" {
		fileExtension = constvars.DoctorImageDefaultExtension
	}
	return fmt.Sprintf(constvars.DoctorImageObjectNameFormat, uuid.NewString(), fileExtension)
}

func BuildBookingLockKey(treatment, appointmentDate, email string) string {
	return fmt.Sprintf(constvars.BookingLockKeyFormat, treatment, appointmentDate, email)
}
