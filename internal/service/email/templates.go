// internal/service/email/templates.go
package email

import (
	"fmt"
	"html"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/lead"
)

// Template builders are pure string functions; the sender wraps their output
// in the branded layout. All user-supplied values are HTML-escaped.

// LeadNotificationBody is the internal sales alert for a new enquiry.
func LeadNotificationBody(l *lead.Lead, modelName string) string {
	body := "<h2>New enquiry received</h2><table class=\"details\">"
	body += row("Name", l.Name)
	body += row("Email", l.Email)
	body += row("Phone", l.Phone)
	body += row("City", l.City)
	if modelName != "" {
		body += row("Interested model", modelName)
	}
	if l.Message.Valid && l.Message.String != "" {
		body += row("Message", l.Message.String)
	}
	body += row("Source", l.Source)
	body += "</table>"
	return body
}

// LeadConfirmationBody is the thank-you email sent to the submitter.
func LeadConfirmationBody(l *lead.Lead) string {
	return fmt.Sprintf(
		"<h2>Thanks for reaching out, %s!</h2>"+
			"<p>We have received your enquiry and our team will get in touch within one working day.</p>"+
			"<p>Meanwhile, feel free to explore our scooter range or book a free test ride at your nearest dealership.</p>",
		html.EscapeString(l.Name),
	)
}

// BookingNotificationBody is the internal alert for a new test-ride booking.
func BookingNotificationBody(b *booking.TestRideBooking, dealerName, modelName string) string {
	body := "<h2>New test ride booked</h2><table class=\"details\">"
	body += row("Reference", b.Reference)
	body += row("Name", b.Name)
	body += row("Email", b.Email)
	body += row("Phone", b.Phone)
	body += row("Dealership", dealerName)
	if modelName != "" {
		body += row("Model", modelName)
	}
	body += row("Date", b.RideDate.Format("Mon, 02 Jan 2006"))
	body += row("Time slot", b.TimeSlot)
	if b.Notes.Valid && b.Notes.String != "" {
		body += row("Notes", b.Notes.String)
	}
	body += "</table>"
	return body
}

// BookingConfirmationBody is the confirmation sent to the customer.
func BookingConfirmationBody(b *booking.TestRideBooking, dealerName string) string {
	return fmt.Sprintf(
		"<h2>Your test ride is booked, %s!</h2>"+
			"<p>Booking reference: <strong>%s</strong></p>"+
			"<p>We look forward to seeing you at <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p>"+
			"<p>Please carry a valid driving licence. Our team will confirm your slot shortly.</p>",
		html.EscapeString(b.Name),
		html.EscapeString(b.Reference),
		html.EscapeString(dealerName),
		b.RideDate.Format("Mon, 02 Jan 2006"),
		html.EscapeString(b.TimeSlot),
	)
}

func row(label, value string) string {
	return fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>",
		html.EscapeString(label), html.EscapeString(value))
}
