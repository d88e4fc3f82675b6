package constvars

const (
	EmailSendBasicEmailSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n"

	EmailBookingAdmittedSubjectFormat = "Your appointment for %s is confirmed"
	EmailBookingAdmittedBodyFormat    = `Dear %s,

Your appointment for %s on %s at %s has been booked.
Please pay %.2f before your visit to complete the booking.

Booking reference: %s

Thank you.`
)
