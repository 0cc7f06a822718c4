package domain

import (
	"regexp"
	"time"
)

// DeliveryFee is the flat fee added to the cart subtotal at placement.
const DeliveryFee = 5.99

const dateLayout = "2006-01-02"

// DeliveryTimeSlots is the fixed set of slots the schedule step accepts.
var DeliveryTimeSlots = []string{
	"9am-11am",
	"11am-1pm",
	"1pm-3pm",
	"3pm-5pm",
}

var (
	zipPattern    = regexp.MustCompile(`^\d{5}$`)
	cardPattern   = regexp.MustCompile(`^(?:\d{4} ?){4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/?\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

type DeliveryDetails struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
}

func (d DeliveryDetails) Validate() FieldErrors {
	errs := FieldErrors{}
	if len(d.FullName) < 2 {
		errs["full_name"] = "Full name is required."
	}
	if len(d.Address) < 5 {
		errs["address"] = "A valid address is required."
	}
	if len(d.City) < 2 {
		errs["city"] = "City is required."
	}
	if !zipPattern.MatchString(d.ZipCode) {
		errs["zip_code"] = "Enter a valid 5-digit zip code."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type ScheduleDetails struct {
	DeliveryDate string `json:"delivery_date"`
	DeliveryTime string `json:"delivery_time"`
}

// Validate checks the schedule against the given clock. Dates compare at day
// granularity: today is deliverable, yesterday is not.
func (s ScheduleDetails) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if s.DeliveryDate == "" {
		errs["delivery_date"] = "A delivery date is required."
	} else if date, err := time.ParseInLocation(dateLayout, s.DeliveryDate, now.Location()); err != nil {
		errs["delivery_date"] = "Enter a valid date (YYYY-MM-DD)."
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			errs["delivery_date"] = "Delivery date cannot be in the past."
		}
	}

	if s.DeliveryTime == "" {
		errs["delivery_time"] = "A delivery time is required."
	} else if !validTimeSlot(s.DeliveryTime) {
		errs["delivery_time"] = "Select a valid delivery time slot."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validTimeSlot(slot string) bool {
	for _, s := range DeliveryTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Validate is format checking only. No Luhn check, no gateway call.
func (p PaymentDetails) Validate() FieldErrors {
	errs := FieldErrors{}
	if !cardPattern.MatchString(p.CardNumber) {
		errs["card_number"] = "Enter a valid card number."
	}
	if !expiryPattern.MatchString(p.ExpiryDate) {
		errs["expiry_date"] = "Enter MM/YY."
	}
	if !cvvPattern.MatchString(p.CVV) {
		errs["cvv"] = "Enter a valid CVV."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
