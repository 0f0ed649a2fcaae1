package order

import (
	"fmt"
	"strings"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InProgress is the sentinel issue-date value for orders still being
// worked on. Written exact-case, matched case-insensitively on read.
const InProgress = "in progress"

// Field length limits.
const (
	MaxNameLength     = 50
	MaxBrandLength    = 20
	MaxFullNameLength = 50
	MaxPhoneLength    = 30
	MaxStatusLength   = 30
)

// Order is a single repair-service order. The ID is assigned once at
// creation and never changes; list position is display numbering only.
type Order struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone"`
	Status          string          `json:"status"`
	Price           decimal.Decimal `json:"price"`
	DateAppointment string          `json:"date_appointment"`
	DateIssue       string          `json:"date_issue"`
}

// New validates every field and returns an Order with a fresh ID.
func New(name, brand, fullName, phone, status string, price decimal.Decimal, dateAppointment, dateIssue string) (*Order, error) {
	o := &Order{
		ID:              uuid.NewString(),
		Name:            name,
		Brand:           brand,
		FullName:        fullName,
		Phone:           phone,
		Status:          status,
		Price:           price,
		DateAppointment: dateAppointment,
		DateIssue:       dateIssue,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks all field constraints at once.
func (o *Order) Validate() error {
	if err := ValidateText("name", o.Name, MaxNameLength); err != nil {
		return err
	}
	if err := ValidateText("brand", o.Brand, MaxBrandLength); err != nil {
		return err
	}
	if err := ValidateText("full name", o.FullName, MaxFullNameLength); err != nil {
		return err
	}
	if err := ValidateText("phone", o.Phone, MaxPhoneLength); err != nil {
		return err
	}
	if err := ValidateText("status", o.Status, MaxStatusLength); err != nil {
		return err
	}
	if err := ValidateAppointment(o.DateAppointment); err != nil {
		return err
	}
	return ValidateIssue(o.DateIssue)
}

// ValidateText enforces a single text field's length limit.
func ValidateText(field, value string, maxLen int) error {
	if len(value) > maxLen {
		return &errs.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters, got %d", maxLen, len(value)),
		}
	}
	return nil
}

// ValidateAppointment requires a well-formed calendar date.
func ValidateAppointment(s string) error {
	if !dates.Valid(s) {
		return &errs.ValidationError{
			Field:   "appointment date",
			Message: "must be a valid DD-MM-YYYY date",
		}
	}
	return nil
}

// ValidateIssue accepts a well-formed calendar date or the in-progress
// sentinel, nothing else.
func ValidateIssue(s string) error {
	if dates.Valid(s) || strings.EqualFold(s, InProgress) {
		return nil
	}
	return &errs.ValidationError{
		Field:   "issue date",
		Message: fmt.Sprintf("must be a valid DD-MM-YYYY date or %q", InProgress),
	}
}

// Pending reports whether the order is still being worked on.
func (o *Order) Pending() bool {
	return strings.EqualFold(o.DateIssue, InProgress)
}
