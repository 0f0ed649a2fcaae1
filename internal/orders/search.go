package orders

import (
	"strings"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
)

// SearchField selects the text field to match against.
type SearchField string

const (
	SearchByName     SearchField = "name"
	SearchByBrand    SearchField = "brand"
	SearchByFullName SearchField = "fullName"
	SearchByStatus   SearchField = "status"
)

// Search returns a new slice of orders whose field contains the query,
// case-insensitively, preserving repository order. An empty query
// matches nothing: the search menu must never dump the whole list by
// accident.
func (s *Service) Search(field SearchField, query string) ([]*order.Order, error) {
	result := make([]*order.Order, 0)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return result, nil
	}

	var value func(*order.Order) string
	switch field {
	case SearchByName:
		value = func(o *order.Order) string { return o.Name }
	case SearchByBrand:
		value = func(o *order.Order) string { return o.Brand }
	case SearchByFullName:
		value = func(o *order.Order) string { return o.FullName }
	case SearchByStatus:
		value = func(o *order.Order) string { return o.Status }
	default:
		return nil, &errs.ValidationError{Field: "search field", Message: string(field)}
	}

	for _, o := range s.repo.All() {
		if strings.Contains(strings.ToLower(value(o)), query) {
			result = append(result, o)
		}
	}
	return result, nil
}
