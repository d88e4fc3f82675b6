package utils

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateBookingRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.CreateBooking{
			Email: "  A@X.COM  ",
		}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "a@x.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Slot And Treatment Keep Inner Spacing", func(t *testing.T) {
		request := &requests.CreateBooking{
			Treatment:       "  Teeth Cleaning ",
			Slot:            " 10:00 AM ",
			AppointmentDate: " 2024-05-01",
		}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "Teeth Cleaning", request.Treatment)
		assert.Equal(t, "10:00 AM", request.Slot, "slot labels are compared verbatim after trimming")
		assert.Equal(t, "2024-05-01", request.AppointmentDate)
	})

	t.Run("Patient Name Collapses Whitespace", func(t *testing.T) {
		request := &requests.CreateBooking{
			Patient: "  Jane    Doe ",
		}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "Jane Doe", request.Patient)
	})
}

func TestSanitizeConfirmPaymentRequest(t *testing.T) {
	request := &requests.ConfirmPayment{
		BookingID:     " 663a1f0c2b1e4a0012345678 ",
		TransactionID: " pi_123 ",
		Email:         " Patient@Example.com",
	}

	SanitizeConfirmPaymentRequest(request)

	assert.Equal(t, "663a1f0c2b1e4a0012345678", request.BookingID)
	assert.Equal(t, "pi_123", request.TransactionID)
	assert.Equal(t, "patient@example.com", request.Email)
}

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	request := &requests.CreateDoctor{
		Name:      " Dr.  Who ",
		Email:     "DOC@CLINIC.ORG ",
		Specialty: " Cleaning ",
	}

	SanitizeCreateDoctorRequest(request)

	assert.Equal(t, "Dr. Who", request.Name)
	assert.Equal(t, "doc@clinic.org", request.Email)
	assert.Equal(t, "Cleaning", request.Specialty)
}
