package orders

import (
	"sort"
	"strconv"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
)

// SortField selects the key for sorting.
type SortField string

const (
	SortByName     SortField = "name"
	SortByBrand    SortField = "brand"
	SortByFullName SortField = "fullName"
	SortByPhone    SortField = "phone"
	SortByStatus   SortField = "status"
	SortByPrice    SortField = "price"
)

// Sort stably reorders the live collection ascending by the given
// field. Text fields compare byte-wise on the stored value. Phone
// values must be pure integer strings; the first non-numeric one
// aborts the sort with InvalidPhoneFormatError before anything moves.
func (s *Service) Sort(field SortField) error {
	items := s.repo.All()

	switch field {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	case SortByBrand:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Brand < items[j].Brand })
	case SortByFullName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].FullName < items[j].FullName })
	case SortByStatus:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Status < items[j].Status })
	case SortByPrice:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price.LessThan(items[j].Price) })
	case SortByPhone:
		keys := make(map[string]int64, len(items))
		for _, o := range items {
			n, err := strconv.ParseInt(o.Phone, 10, 64)
			if err != nil {
				return &errs.InvalidPhoneFormatError{Value: o.Phone}
			}
			keys[o.ID] = n
		}
		sort.SliceStable(items, func(i, j int) bool { return keys[items[i].ID] < keys[items[j].ID] })
	default:
		return &errs.ValidationError{Field: "sort field", Message: string(field)}
	}
	return nil
}
