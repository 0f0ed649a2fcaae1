package orders

import (
	"fmt"
	"strings"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
)

// FormatLine renders an order as a single summary line with a fixed
// field order. Empty fields show as a dash so the layout never
// collapses.
func FormatLine(o *order.Order) string {
	return fmt.Sprintf("%s | Brand: %s | Customer: %s | Price: %s | Status: %s | Phone: %s | Accepted: %s | Issued: %s",
		orDash(o.Name),
		orDash(o.Brand),
		orDash(o.FullName),
		o.Price.StringFixed(2),
		orDash(o.Status),
		orDash(o.Phone),
		orDash(o.DateAppointment),
		orDash(o.DateIssue),
	)
}

// FormatDetail renders the numbered multi-line block used by order
// listings. n is display numbering only and says nothing about the
// order's identity.
func FormatDetail(n int, o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n", n, orDash(o.Name))
	fmt.Fprintf(&b, "   Brand: %s\n", orDash(o.Brand))
	fmt.Fprintf(&b, "   Customer: %s\n", orDash(o.FullName))
	fmt.Fprintf(&b, "   Price: %s\n", o.Price.StringFixed(2))
	fmt.Fprintf(&b, "   Status: %s\n", orDash(o.Status))
	fmt.Fprintf(&b, "   Customer phone: %s\n", orDash(o.Phone))
	fmt.Fprintf(&b, "   Accepted: %s\n", orDash(o.DateAppointment))
	fmt.Fprintf(&b, "   Issued: %s\n", orDash(o.DateIssue))
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
