package orders

import (
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/dates"
)

// OverdueAfterDays is the grace period between appointment and issue.
// An order issued more than this many days after its appointment is
// overdue.
const OverdueAfterDays = 21

// IsOverdue reports whether a completed order took too long. Pending
// orders and orders whose dates fail to parse are never overdue.
func IsOverdue(o *order.Order) bool {
	if o.Pending() {
		return false
	}
	appointment, err := dates.Parse(o.DateAppointment)
	if err != nil {
		return false
	}
	issue, err := dates.Parse(o.DateIssue)
	if err != nil {
		return false
	}
	return dates.DaysBetween(appointment, issue) > OverdueAfterDays
}

// Overdue returns the orders issued past the grace period, in
// repository order.
func (s *Service) Overdue() []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range s.repo.All() {
		if IsOverdue(o) {
			result = append(result, o)
		}
	}
	return result
}

// Pending returns the orders still being worked on, in repository
// order.
func (s *Service) Pending() []*order.Order {
	result := make([]*order.Order, 0)
	for _, o := range s.repo.All() {
		if o.Pending() {
			result = append(result, o)
		}
	}
	return result
}
