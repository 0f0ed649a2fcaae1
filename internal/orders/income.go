package orders

import (
	"fmt"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/dates"
	"github.com/shopspring/decimal"
)

// TotalIncome sums the prices of orders issued within [start, end],
// both bounds inclusive. Orders still in progress, or with an issue
// date that does not parse, are skipped silently. Unparseable bounds
// or start after end fail with errs.ErrInvalidRange.
func (s *Service) TotalIncome(start, end string) (decimal.Decimal, error) {
	from, err := dates.Parse(start)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: start %q", errs.ErrInvalidRange, start)
	}
	to, err := dates.Parse(end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: end %q", errs.ErrInvalidRange, end)
	}
	if from.After(to) {
		return decimal.Zero, fmt.Errorf("%w: start %s after end %s", errs.ErrInvalidRange, start, end)
	}

	total := decimal.Zero
	for _, o := range s.repo.All() {
		issued, err := dates.Parse(o.DateIssue)
		if err != nil {
			continue
		}
		if issued.Before(from) || issued.After(to) {
			continue
		}
		total = total.Add(o.Price)
	}
	return total, nil
}
