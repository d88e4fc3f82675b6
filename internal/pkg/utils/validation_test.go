package utils

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *requests.CreateBooking {
	return &requests.CreateBooking{
		Email:           "a@x.com",
		Treatment:       "Cleaning",
		AppointmentDate: "2024-05-01",
		Slot:            "9:00",
		Price:           50,
	}
}

func TestValidateStruct_CreateBooking(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validBooking()))
	})

	t.Run("Invalid Email", func(t *testing.T) {
		request := validBooking()
		request.Email = "not-an-email"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "email must be a valid email", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Date Must Be ISO Calendar Date", func(t *testing.T) {
		request := validBooking()
		request.AppointmentDate = "May 1, 2024"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "appointmentdate must be a date in YYYY-MM-DD format", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Blank Slot", func(t *testing.T) {
		request := validBooking()
		request.Slot = "   "

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "slot must be a non empty slot label", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Negative Price", func(t *testing.T) {
		request := validBooking()
		request.Price = -1

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "price must be greater than or equal to 0", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateStruct_CancelBookingObjectID(t *testing.T) {
	err := ValidateStruct(&requests.CancelBooking{BookingID: "xyz", Email: "a@x.com"})
	require.Error(t, err)
	assert.Equal(t, "bookingid must be a valid identifier", exceptions.FormatFirstValidationError(err))

	err = ValidateStruct(&requests.CancelBooking{BookingID: "663a1f0c2b1e4a0012345678", Email: "a@x.com"})
	assert.NoError(t, err)
}

func TestDecodeBase64Image(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	encoded := base64.StdEncoding.EncodeToString(png)

	t.Run("Bare Base64", func(t *testing.T) {
		data, contentType, ext, err := DecodeBase64Image(encoded)
		require.NoError(t, err)
		assert.Equal(t, png, data)
		assert.Equal(t, "image/png", contentType)
		assert.Equal(t, ".png", ext)
	})

	t.Run("Data URI", func(t *testing.T) {
		_, _, ext, err := DecodeBase64Image("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, ".png", ext)
	})

	t.Run("JPEG", func(t *testing.T) {
		jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
		_, contentType, ext, err := DecodeBase64Image(base64.StdEncoding.EncodeToString(jpeg))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", contentType)
		assert.Equal(t, ".jpg", ext)
	})

	t.Run("PDF Is Rejected", func(t *testing.T) {
		_, _, _, err := DecodeBase64Image(base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n")))
		assert.Error(t, err)
	})

	t.Run("Not An Image", func(t *testing.T) {
		_, _, _, err := DecodeBase64Image(base64.StdEncoding.EncodeToString([]byte("hello world")))
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, _, _, err := DecodeBase64Image("  ")
		assert.Error(t, err)
	})
}
