package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/internal/orders"
)

func (a *App) ordersMenu(ctx context.Context) error {
	for {
		a.print("\n=== Order management ===\n")
		a.print("1. Add order\n")
		a.print("2. Edit order\n")
		a.print("3. Delete order\n")
		a.print("4. List orders\n")
		a.print("5. Sort orders\n")
		a.print("6. Search orders\n")
		a.print("7. Unfinished orders report\n")
		a.print("8. Total income\n")
		a.print("0. Back to the main menu\n")

		choice, err := a.promptInt("\nChoice")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = a.addOrder(ctx)
		case 2:
			err = a.editOrder(ctx)
		case 3:
			err = a.deleteOrder(ctx)
		case 4:
			err = a.listOrders()
		case 5:
			err = a.sortOrders()
		case 6:
			err = a.searchOrders()
		case 7:
			err = a.unfinishedReport()
		case 8:
			err = a.totalIncome()
		case 0:
			return nil
		default:
			a.print("Invalid choice\n")
			a.pause()
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) addOrder(ctx context.Context) error {
	var p orders.CreateParams
	var err error

	if p.Name, err = a.promptLimited("Device name", order.MaxNameLength); err != nil {
		return err
	}
	if p.Brand, err = a.promptLimited("Brand", order.MaxBrandLength); err != nil {
		return err
	}
	if p.FullName, err = a.promptLimited("Customer full name", order.MaxFullNameLength); err != nil {
		return err
	}
	if p.Price, err = a.promptPrice("Price"); err != nil {
		return err
	}
	if p.Phone, err = a.promptLimited("Customer phone", order.MaxPhoneLength); err != nil {
		return err
	}
	if p.Status, err = a.promptLimited("Order status", order.MaxStatusLength); err != nil {
		return err
	}
	if p.DateAppointment, err = a.promptDate("Appointment date"); err != nil {
		return err
	}
	if p.DateIssue, err = a.promptIssueDate(); err != nil {
		return err
	}

	if _, err = a.orders.Create(ctx, p); err != nil {
		a.reportError("Could not add the order", err)
	} else {
		a.print("Order added\n")
	}
	a.pause()
	return nil
}

// selectOrder renders the current listing and resolves the chosen
// display number to an order ID. Returns "" when the user backs out.
func (a *App) selectOrder(verb string) (string, error) {
	list := a.orders.List()
	if len(list) == 0 {
		a.print("No orders found\n")
		a.pause()
		return "", nil
	}

	a.print("Orders:\n")
	for i, o := range list {
		a.print("%s", orders.FormatDetail(i+1, o))
	}

	choice, err := a.promptInt(fmt.Sprintf("\nChoose an order to %s (0 to exit)", verb))
	if err != nil {
		return "", err
	}
	if choice == 0 {
		return "", nil
	}
	if choice < 1 || choice > len(list) {
		a.reportError("Invalid choice", errs.ErrIndexOutOfRange)
		a.pause()
		return "", nil
	}
	return list[choice-1].ID, nil
}

func (a *App) editOrder(ctx context.Context) error {
	id, err := a.selectOrder("edit")
	if err != nil || id == "" {
		return err
	}

	for {
		o, err := a.orders.Get(id)
		if err != nil {
			a.reportError("Order is gone", err)
			a.pause()
			return nil
		}

		a.print("\nEditing order: %s\n", orders.FormatLine(o))
		a.print("1. Edit name\n")
		a.print("2. Edit brand\n")
		a.print("3. Edit customer full name\n")
		a.print("4. Edit price\n")
		a.print("5. Edit status\n")
		a.print("6. Edit customer phone\n")
		a.print("7. Edit appointment date\n")
		a.print("8. Edit issue date\n")
		a.print("0. Finish editing\n")

		choice, err := a.promptInt("Choice")
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		var upd orders.Update
		switch choice {
		case 1:
			v, err := a.promptLimited("New name", order.MaxNameLength)
			if err != nil {
				return err
			}
			upd.Name = &v
		case 2:
			v, err := a.promptLimited("New brand", order.MaxBrandLength)
			if err != nil {
				return err
			}
			upd.Brand = &v
		case 3:
			v, err := a.promptLimited("New customer full name", order.MaxFullNameLength)
			if err != nil {
				return err
			}
			upd.FullName = &v
		case 4:
			v, err := a.promptPrice("New price")
			if err != nil {
				return err
			}
			upd.Price = &v
		case 5:
			v, err := a.promptLimited("New status", order.MaxStatusLength)
			if err != nil {
				return err
			}
			upd.Status = &v
		case 6:
			v, err := a.promptLimited("New customer phone", order.MaxPhoneLength)
			if err != nil {
				return err
			}
			upd.Phone = &v
		case 7:
			v, err := a.promptDate("New appointment date")
			if err != nil {
				return err
			}
			upd.DateAppointment = &v
		case 8:
			v, err := a.promptIssueDate()
			if err != nil {
				return err
			}
			upd.DateIssue = &v
		default:
			a.print("Invalid choice\n")
			a.pause()
			continue
		}

		if _, err = a.orders.Update(ctx, id, upd); err != nil {
			a.reportError("Could not save the change", err)
		} else {
			a.print("Change saved\n")
		}
		a.pause()
	}
}

func (a *App) deleteOrder(ctx context.Context) error {
	id, err := a.selectOrder("delete")
	if err != nil || id == "" {
		return err
	}

	confirm, err := a.promptInt("Are you sure? (1 - yes, 0 - no)")
	if err != nil {
		return err
	}
	if confirm == 1 {
		if err = a.orders.Remove(ctx, id); err != nil {
			a.reportError("Could not delete the order", err)
		} else {
			a.print("Order deleted\n")
		}
	}
	a.pause()
	return nil
}

func (a *App) listOrders() error {
	a.renderOrders(a.orders.List())
	a.pause()
	return nil
}

func (a *App) renderOrders(list []*order.Order) {
	if len(list) == 0 {
		a.print("No orders found\n")
		return
	}
	a.print("=== Orders ===\n\n")
	for i, o := range list {
		a.print("%s\n", orders.FormatDetail(i+1, o))
	}
}

func (a *App) sortOrders() error {
	if len(a.orders.List()) == 0 {
		a.print("No orders to sort\n")
		a.pause()
		return nil
	}

	a.print("Sort by:\n")
	a.print("1. Name\n")
	a.print("2. Brand\n")
	a.print("3. Customer full name\n")
	a.print("4. Customer phone\n")
	a.print("5. Status\n")
	a.print("6. Price\n")

	choice, err := a.promptInt("Choice")
	if err != nil {
		return err
	}

	fields := map[int]orders.SortField{
		1: orders.SortByName,
		2: orders.SortByBrand,
		3: orders.SortByFullName,
		4: orders.SortByPhone,
		5: orders.SortByStatus,
		6: orders.SortByPrice,
	}
	field, ok := fields[choice]
	if !ok {
		a.print("Invalid choice\n")
		a.pause()
		return nil
	}

	if err = a.orders.Sort(field); err != nil {
		a.reportError("Could not sort the orders", err)
	} else {
		a.print("Orders sorted by %s\n", field)
	}
	a.pause()
	return nil
}

func (a *App) searchOrders() error {
	if len(a.orders.List()) == 0 {
		a.print("No orders to search\n")
		a.pause()
		return nil
	}

	for {
		a.print("\n=== Order search ===\n")
		a.print("1. Search by name\n")
		a.print("2. Search by brand\n")
		a.print("3. Search by customer full name\n")
		a.print("4. Search by status\n")
		a.print("0. Exit search\n")

		choice, err := a.promptInt("Choice")
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		fields := map[int]orders.SearchField{
			1: orders.SearchByName,
			2: orders.SearchByBrand,
			3: orders.SearchByFullName,
			4: orders.SearchByStatus,
		}
		field, ok := fields[choice]
		if !ok {
			a.print("Invalid choice, enter a number from 0 to 4\n")
			continue
		}

		query, err := a.prompt("Search query")
		if err != nil {
			return err
		}

		results, err := a.orders.Search(field, query)
		if err != nil {
			a.reportError("Search failed", err)
			a.pause()
			continue
		}

		if len(results) == 0 {
			a.print("No orders found\n")
		} else {
			a.print("\n=== Search results ===\n")
			a.print("Orders found: %d\n", len(results))
			a.renderOrders(results)
		}
		a.pause()
	}
}

func (a *App) unfinishedReport() error {
	if len(a.orders.List()) == 0 {
		a.print("No orders to check\n")
		a.pause()
		return nil
	}

	a.print("=== Overdue orders ===\n\n")
	overdue := a.orders.Overdue()
	if len(overdue) == 0 {
		a.print("No overdue orders\n")
	}
	for i, o := range overdue {
		a.print("%d. %s | Brand: %s | Accepted: %s | Issued: %s | Status: %s\n",
			i+1, o.Name, o.Brand, o.DateAppointment, o.DateIssue, o.Status)
	}

	a.print("\n=== Orders in progress ===\n\n")
	pending := a.orders.Pending()
	if len(pending) == 0 {
		a.print("No orders in progress\n")
	}
	for i, o := range pending {
		a.print("%d. %s | Brand: %s | Accepted: %s | Status: %s | %s\n",
			i+1, o.Name, o.Brand, o.DateAppointment, o.Status, o.DateIssue)
	}

	a.pause()
	return nil
}

func (a *App) totalIncome() error {
	if len(a.orders.List()) == 0 {
		a.print("No orders to calculate income from\n")
		a.pause()
		return nil
	}

	start, err := a.prompt("Start date (DD-MM-YYYY)")
	if err != nil {
		return err
	}
	end, err := a.prompt("End date (DD-MM-YYYY)")
	if err != nil {
		return err
	}

	total, err := a.orders.TotalIncome(start, end)
	if err != nil {
		a.reportError("Could not calculate income", err)
		a.pause()
		return nil
	}

	a.print("\n=== Total income ===\n")
	a.print("From %s to %s: %s\n", start, end, total.StringFixed(2))
	a.pause()
	return nil
}

// reportError prints a short operator-facing message and keeps the
// underlying cause visible.
func (a *App) reportError(msg string, err error) {
	switch {
	case errors.Is(err, errs.ErrPersistence):
		a.print("%s: the change is kept in memory but could not be saved to disk\n", msg)
	default:
		a.print("%s: %s\n", msg, err)
	}
}
