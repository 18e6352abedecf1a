package email

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/lead"
)

func sampleLead() *lead.Lead {
	return &lead.Lead{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		City:    "Pune",
		Source:  lead.SourceWebsite,
		Status:  lead.StatusNew,
		Message: sql.NullString{String: "Interested in EMI options", Valid: true},
	}
}

func TestLeadNotificationBodyContainsDetails(t *testing.T) {
	body := LeadNotificationBody(sampleLead(), "Volt S1")

	for _, want := range []string{"Asha Verma", "asha@example.com", "9876543210", "Pune", "Volt S1", "EMI options"} {
		if !strings.Contains(body, want) {
			t.Errorf("notification body missing %q", want)
		}
	}
}

func TestLeadConfirmationBodyEscapesName(t *testing.T) {
	l := sampleLead()
	l.Name = "<script>alert(1)</script>"

	body := LeadConfirmationBody(l)
	if strings.Contains(body, "<script>") {
		t.Fatal("name not HTML-escaped")
	}
}

func TestBookingBodiesContainReferenceAndSlot(t *testing.T) {
	b := &booking.TestRideBooking{
		Reference: "TRB-01JABCDEFGHJKMNPQRSTVWXYZ",
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Phone:     "9123456780",
		RideDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "11:30 AM",
	}

	notif := BookingNotificationBody(b, "VoltRide Koramangala", "Volt S1 Pro")
	conf := BookingConfirmationBody(b, "VoltRide Koramangala")

	for _, want := range []string{b.Reference, "11:30 AM", "VoltRide Koramangala"} {
		if !strings.Contains(notif, want) {
			t.Errorf("notification missing %q", want)
		}
		if !strings.Contains(conf, want) {
			t.Errorf("confirmation missing %q", want)
		}
	}
	if !strings.Contains(notif, "Volt S1 Pro") {
		t.Error("notification missing model name")
	}
	if !strings.Contains(conf, "12 Sep 2026") {
		t.Errorf("confirmation missing formatted date: %s", conf)
	}
}

func TestWrapLayoutBrandsBody(t *testing.T) {
	out := wrapLayout("<p>hello</p>")
	if !strings.Contains(out, "VoltRide") || !strings.Contains(out, "<p>hello</p>") {
		t.Fatal("layout wrapper missing branding or content")
	}
}
