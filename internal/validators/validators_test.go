package validators

import (
	"testing"
	"time"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/lead"
)

func TestIndianMobileAcceptsValidNumbers(t *testing.T) {
	for _, phone := range []string{"9876543210", "6000000000", "7123456789", "8999999999"} {
		if !IsValidIndianMobile(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
}

func TestIndianMobileRejectsInvalidNumbers(t *testing.T) {
	cases := []string{
		"1234567890",  // leading digit below 6
		"5876543210",  // leading 5
		"987654321",   // 9 digits
		"98765432101", // 11 digits
		"+919876543210",
		"98765 43210",
		"abcdefghij",
		"",
	}
	for _, phone := range cases {
		if IsValidIndianMobile(phone) {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}

func TestSubmitLeadRequestValidation(t *testing.T) {
	req := lead.SubmitRequest{
		Name:   "Asha Verma",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		City:   "Pune",
		Source: "website",
	}
	if errs := ValidateStruct(req); errs != nil {
		t.Fatalf("valid lead rejected: %v", errs)
	}

	req.Phone = "12345"
	errs := ValidateStruct(req)
	if errs == nil {
		t.Fatal("invalid phone accepted")
	}
	if errs[0].Field != "phone" {
		t.Fatalf("expected phone field error, got %v", errs)
	}
}

func TestSubmitLeadRequestRejectsUnknownSource(t *testing.T) {
	req := lead.SubmitRequest{
		Name:   "Asha Verma",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		City:   "Pune",
		Source: "carrier-pigeon",
	}
	if errs := ValidateStruct(req); errs == nil {
		t.Fatal("unknown source accepted")
	}
}

func TestBookingPastDateRejected(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	req := booking.SubmitRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		DealerID: 1,
		RideDate: yesterday,
		TimeSlot: "10:00 AM",
	}
	if errs := ValidateStruct(req); errs == nil {
		t.Fatal("past ride date accepted")
	}
}

func TestBookingTodayAccepted(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	req := booking.SubmitRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		DealerID: 1,
		RideDate: today,
		TimeSlot: "10:00 AM",
	}
	if errs := ValidateStruct(req); errs != nil {
		t.Fatalf("booking for today rejected: %v", errs)
	}
}

func TestBookingUnknownTimeSlotRejected(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	req := booking.SubmitRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		DealerID: 1,
		RideDate: tomorrow,
		TimeSlot: "3:33 AM",
	}
	if errs := ValidateStruct(req); errs == nil {
		t.Fatal("unknown time slot accepted")
	}
}

func TestParseRideDate(t *testing.T) {
	if _, err := ParseRideDate("not-a-date"); err == nil {
		t.Fatal("malformed date accepted")
	}
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := ParseRideDate(yesterday); err == nil {
		t.Fatal("past date accepted")
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if _, err := ParseRideDate(tomorrow); err != nil {
		t.Fatalf("tomorrow rejected: %v", err)
	}
}

func TestSlugValidation(t *testing.T) {
	type probe struct {
		Slug string `validate:"slug"`
	}
	for _, slug := range []string{"volt-s1", "city-rider-2", "x"} {
		if errs := ValidateStruct(probe{Slug: slug}); errs != nil {
			t.Errorf("valid slug %q rejected: %v", slug, errs)
		}
	}
	for _, slug := range []string{"Volt S1", "volt_s1", "-volt", "volt-", ""} {
		if errs := ValidateStruct(probe{Slug: slug}); errs == nil {
			t.Errorf("invalid slug %q accepted", slug)
		}
	}
}
