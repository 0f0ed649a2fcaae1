// Package cli implements the interactive text menu of the service
// desk: login screen, admin and user menus, input retry loops. All
// record logic lives in the services; the menus collect input, call
// them and render results.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
	"github.com/bibagei/Hudoleev-kursovaya/internal/models/user"
	"github.com/bibagei/Hudoleev-kursovaya/internal/orders"
	"github.com/bibagei/Hudoleev-kursovaya/internal/users"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/logger"
)

type App struct {
	in     *bufio.Reader
	out    io.Writer
	orders *orders.Service
	users  *users.Service
	logger logger.Logger
}

func New(in io.Reader, out io.Writer, orderService *orders.Service, userService *users.Service, logger logger.Logger) (*App, error) {
	if orderService == nil {
		return nil, errors.New("nil dependency: order service")
	}
	if userService == nil {
		return nil, errors.New("nil dependency: user service")
	}
	return &App{
		in:     bufio.NewReader(in),
		out:    out,
		orders: orderService,
		users:  userService,
		logger: logger,
	}, nil
}

// Run drives the session: login, role menu, logout, repeat. It
// returns when the input stream ends.
func (a *App) Run(ctx context.Context) error {
	for {
		u, err := a.loginScreen(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.print("\nGoodbye!\n")
				return nil
			}
			return err
		}

		// The authenticated user is carried in the context, not in
		// package-level state.
		sessionCtx := user.NewContext(ctx, u)

		if u.Role == user.RoleAdmin {
			err = a.adminMenu(sessionCtx)
		} else {
			err = a.userMenu(sessionCtx)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.print("\nGoodbye!\n")
				return nil
			}
			return err
		}
	}
}

func (a *App) loginScreen(ctx context.Context) (*user.User, error) {
	for {
		a.print("\n=== Service desk order management ===\n")
		a.print("Please log in to continue\n\n")

		login, err := a.prompt("Login")
		if err != nil {
			return nil, err
		}
		password, err := a.prompt("Password")
		if err != nil {
			return nil, err
		}

		u, err := a.users.Authenticate(ctx, login, password)
		if err != nil {
			a.print("\n%s\n", loginFailureMessage(err))
			a.pause()
			continue
		}

		a.print("\nWelcome, %s.\n", u.Login)
		a.pause()
		return u, nil
	}
}

func loginFailureMessage(err error) string {
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return "Wrong login or password"
}

func (a *App) adminMenu(ctx context.Context) error {
	for {
		a.print("\n=== Administrator menu ===\n")
		a.print("1. Order management\n")
		a.print("2. User management\n")
		a.print("0. Log out\n")

		choice, err := a.promptInt("\nChoice")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err = a.ordersMenu(ctx); err != nil {
				return err
			}
		case 2:
			if err = a.usersMenu(ctx); err != nil {
				return err
			}
		case 0:
			return nil
		default:
			a.print("Invalid choice\n")
			a.pause()
		}
	}
}

func (a *App) userMenu(ctx context.Context) error {
	for {
		a.print("\n=== User menu ===\n")
		a.print("1. List orders\n")
		a.print("2. Sort orders\n")
		a.print("3. Unfinished orders report\n")
		a.print("4. Total income\n")
		a.print("0. Log out\n")

		choice, err := a.promptInt("\nChoice")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = a.listOrders()
		case 2:
			err = a.sortOrders()
		case 3:
			err = a.unfinishedReport()
		case 4:
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
