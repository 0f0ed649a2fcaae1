package cli

import (
	"context"
	"errors"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/internal/users"
)

func (a *App) usersMenu(ctx context.Context) error {
	for {
		a.print("\n=== User management ===\n")
		a.print("1. Add user\n")
		a.print("2. Edit user\n")
		a.print("3. Delete user\n")
		a.print("4. List users\n")
		a.print("0. Back to the main menu\n")

		choice, err := a.promptInt("\nChoice")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = a.addUser(ctx)
		case 2:
			err = a.editUser(ctx)
		case 3:
			err = a.deleteUser(ctx)
		case 4:
			err = a.listUsers()
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

func (a *App) addUser(ctx context.Context) error {
	if len(a.users.List()) >= users.MaxUsers {
		a.print("Maximum number of users reached (%d)\n", users.MaxUsers)
		a.pause()
		return nil
	}

	login, err := a.promptLimited("Login", user.MaxLoginLength)
	if err != nil {
		return err
	}
	password, err := a.promptLimited("Password", user.MaxPasswordLength)
	if err != nil {
		return err
	}
	role, err := a.promptRole()
	if err != nil {
		return err
	}
	if role == "" {
		return nil
	}

	if _, err = a.users.Register(ctx, login, password, role); err != nil {
		a.reportUserError(err)
	} else {
		a.print("User added\n")
	}
	a.pause()
	return nil
}

func (a *App) promptRole() (user.Role, error) {
	v, err := a.promptInt("Role (1 - admin, 2 - user)")
	if err != nil {
		return "", err
	}
	role, ok := user.RoleFromValue(v)
	if !ok {
		a.print("Invalid role\n")
		a.pause()
		return "", nil
	}
	return role, nil
}

// selectUser renders the user listing and resolves the chosen display
// number to a user ID. Returns "" when the user backs out.
func (a *App) selectUser(verb string) (string, error) {
	list := a.users.List()
	if len(list) == 0 {
		a.print("No users found\n")
		a.pause()
		return "", nil
	}

	a.print("Users:\n")
	for i, u := range list {
		a.print("%d. %s\n", i+1, u)
	}

	choice, err := a.promptInt("\nChoose a user to " + verb + " (0 to exit)")
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

func (a *App) editUser(ctx context.Context) error {
	id, err := a.selectUser("edit")
	if err != nil || id == "" {
		return err
	}

	a.print("1. Change password\n")
	a.print("2. Change role\n")
	a.print("0. Finish editing\n")

	choice, err := a.promptInt("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		password, err := a.promptLimited("New password", user.MaxPasswordLength)
		if err != nil {
			return err
		}
		if err = a.users.ChangePassword(ctx, id, password); err != nil {
			a.reportUserError(err)
		} else {
			a.print("Password changed\n")
		}
	case 2:
		role, err := a.promptRole()
		if err != nil {
			return err
		}
		if role == "" {
			return nil
		}
		if err = a.users.ChangeRole(ctx, id, role); err != nil {
			a.reportUserError(err)
		} else {
			a.print("Role changed\n")
		}
	case 0:
		return nil
	default:
		a.print("Invalid choice\n")
	}

	a.pause()
	return nil
}

func (a *App) deleteUser(ctx context.Context) error {
	id, err := a.selectUser("delete")
	if err != nil || id == "" {
		return err
	}

	confirm, err := a.promptInt("Are you sure? (1 - yes, 0 - no)")
	if err != nil {
		return err
	}
	if confirm == 1 {
		if err = a.users.Remove(ctx, id); err != nil {
			a.reportUserError(err)
		} else {
			a.print("User deleted\n")
		}
	}
	a.pause()
	return nil
}

func (a *App) listUsers() error {
	list := a.users.List()
	if len(list) == 0 {
		a.print("No users found\n")
		a.pause()
		return nil
	}

	a.print("=== Users ===\n\n")
	for i, u := range list {
		a.print("%d. %s\n", i+1, u)
	}
	a.pause()
	return nil
}

func (a *App) reportUserError(err error) {
	switch {
	case errors.Is(err, errs.ErrConflict):
		a.print("Login already exists\n")
	case errors.Is(err, errs.ErrCapacityExceeded):
		a.print("Maximum number of users reached (%d)\n", users.MaxUsers)
	default:
		a.reportError("Operation failed", err)
	}
}
