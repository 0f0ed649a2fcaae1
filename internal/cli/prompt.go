package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/order"
	"github.com/bibagei/Hudoleev-kursovaya/pkg/dates"
	"github.com/shopspring/decimal"
)

// readLine reads one trimmed line of input. An error here means the
// input stream ended and the session should stop.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) print(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(label string) (string, error) {
	a.print("%s: ", label)
	return a.readLine()
}

// promptInt re-prompts until the input is a number.
func (a *App) promptInt(label string) (int, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			a.print("Please enter a number\n")
			continue
		}
		return n, nil
	}
}

// promptLimited warns about and truncates input over the limit, the
// way the add-order workflow collects text fields.
func (a *App) promptLimited(label string, maxLen int) (string, error) {
	line, err := a.prompt(fmt.Sprintf("%s (max %d characters)", label, maxLen))
	if err != nil {
		return "", err
	}
	if len(line) > maxLen {
		a.print("Warning: %d characters entered, truncating to %d\n", len(line), maxLen)
		line = line[:maxLen]
	}
	return line, nil
}

// promptDate re-prompts until the input is a valid DD-MM-YYYY date.
func (a *App) promptDate(label string) (string, error) {
	for {
		line, err := a.prompt(label + " (DD-MM-YYYY)")
		if err != nil {
			return "", err
		}
		if !dates.Valid(line) {
			a.print("Invalid date format, use DD-MM-YYYY\n")
			continue
		}
		return line, nil
	}
}

// promptPrice re-prompts until the input is a decimal number.
func (a *App) promptPrice(label string) (decimal.Decimal, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		price, err := decimal.NewFromString(line)
		if err != nil {
			a.print("Please enter a number\n")
			continue
		}
		return price, nil
	}
}

// promptIssueDate offers either a real issue date or the in-progress
// sentinel and loops until one of them is produced.
func (a *App) promptIssueDate() (string, error) {
	for {
		a.print("\nChoose an option:\n")
		a.print("1. Enter the issue date (DD-MM-YYYY)\n")
		a.print("2. Mark the order as %q\n", order.InProgress)
		choice, err := a.promptInt("Your choice")
		if err != nil {
			return "", err
		}

		switch choice {
		case 1:
			line, err := a.prompt("Issue date (DD-MM-YYYY)")
			if err != nil {
				return "", err
			}
			if !dates.Valid(line) {
				a.print("Invalid date format, use DD-MM-YYYY\n")
				continue
			}
			return line, nil
		case 2:
			a.print("%s\n", order.InProgress)
			return order.InProgress, nil
		default:
			a.print("Invalid choice, try again\n")
		}
	}
}

// pause waits for Enter so output is readable before the next menu.
func (a *App) pause() {
	a.print("\nPress Enter to continue...")
	_, _ = a.in.ReadString('\n')
}
