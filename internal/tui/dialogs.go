package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evalizada/manat/internal/config"
	"github.com/evalizada/manat/internal/currency"
	"github.com/evalizada/manat/internal/model"
	"github.com/evalizada/manat/internal/tui/theme"
)

// dialogKind is the closed set of modal dialogs. Opening and applying a
// dialog is switched exhaustively on this type; adding a dialog is a
// compile-time-checked change.
type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogAddSpending
	dialogAddSubscription
	dialogUsername
	dialogBudget
	dialogGoal
	dialogCurrency
	dialogLanguage
	dialogTheme
	dialogSignIn
	dialogSignUp
)

// addNewOption is the select entry that reveals the new-category/service
// input group.
const addNewOption = "__add_new__"

// formValues holds the transient input of the active dialog. It is discarded
// on cancel and after a successful submit; nothing here is application state.
type formValues struct {
	category    string
	newCategory string
	service     string
	newService  string
	amount      string
	date        string
	description string
	color       string
	notify      bool
	name        string
	email       string
	password    string
	choice      string
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := currency.ParseDisplay(s); err != nil {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func validatePositiveAmount(s string) error {
	d, err := currency.ParseDisplay(s)
	if err != nil || d <= 0 {
		return errors.New("enter a number greater than zero")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

// openDialog builds the form for kind and installs it as the active overlay.
func (a App) openDialog(kind dialogKind) (tea.Model, tea.Cmd, bool) {
	vals := &formValues{}
	cur := a.ledger.DisplayCurrency()
	sym := currency.Symbol(cur)

	var form *huh.Form
	switch kind {

	case dialogAddSpending:
		vals.date = a.now().Format("2006-01-02")
		categories := a.ledger.Categories()
		opts := make([]huh.Option[string], 0, len(categories)+1)
		for _, c := range categories {
			opts = append(opts, huh.NewOption(c, c))
		}
		opts = append(opts, huh.NewOption("+ add new category", addNewOption))

		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Category").
					Options(opts...).
					Value(&vals.category),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("New category").
					Placeholder("Enter category name...").
					Validate(validateRequired).
					Value(&vals.newCategory),
			).WithHideFunc(func() bool { return vals.category != addNewOption }),
			huh.NewGroup(
				huh.NewInput().
					Title("Description").
					Placeholder("What did you buy?").
					Validate(validateRequired).
					Value(&vals.description),
				huh.NewInput().
					Title(fmt.Sprintf("Amount (%s)", sym)).
					Placeholder("0.00").
					Validate(validateAmount).
					Value(&vals.amount),
				huh.NewInput().
					Title("Date").
					Validate(validateDate).
					Value(&vals.date),
			),
		).WithTheme(formTheme())

	case dialogAddSubscription:
		vals.date = a.now().Format("2006-01-02")
		services := a.ledger.Services()
		opts := make([]huh.Option[string], 0, len(services)+1)
		for _, s := range services {
			opts = append(opts, huh.NewOption(s, s))
		}
		opts = append(opts, huh.NewOption("+ add new service", addNewOption))

		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Service").
					Options(opts...).
					Value(&vals.service),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("New service").
					Placeholder("Enter service name...").
					Validate(validateRequired).
					Value(&vals.newService),
			).WithHideFunc(func() bool { return vals.service != addNewOption }),
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Monthly amount (%s)", sym)).
					Placeholder("0.00").
					Validate(validateAmount).
					Value(&vals.amount),
				huh.NewInput().
					Title("Next payment date").
					Validate(validateDate).
					Value(&vals.date),
				huh.NewSelect[string]().
					Title("Color").
					Options(huh.NewOptions("red", "green", "blue", "purple", "yellow")...).
					Value(&vals.color),
				huh.NewConfirm().
					Title("Notify by mail before payment?").
					Value(&vals.notify),
			),
		).WithTheme(formTheme())

	case dialogUsername:
		vals.name = a.ledger.Username()
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Validate(validateRequired).
				Value(&vals.name),
		)).WithTheme(formTheme())

	case dialogBudget:
		vals.amount = fmt.Sprintf("%.2f", float64(currency.ToDisplay(a.ledger.Budget(), cur)))
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Monthly budget (%s)", sym)).
				Validate(validatePositiveAmount).
				Value(&vals.amount),
		)).WithTheme(formTheme())

	case dialogGoal:
		if g := a.ledger.Goal(); g > 0 {
			vals.amount = fmt.Sprintf("%.2f", float64(currency.ToDisplay(g, cur)))
		}
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Savings goal (%s)", sym)).
				Validate(validatePositiveAmount).
				Value(&vals.amount),
		)).WithTheme(formTheme())

	case dialogCurrency:
		vals.choice = string(cur)
		opts := make([]huh.Option[string], 0, 2)
		for _, c := range currency.All() {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c, currency.Symbol(c)), string(c)))
		}
		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display currency").
				Options(opts...).
				Value(&vals.choice),
		)).WithTheme(formTheme())

	case dialogLanguage:
		vals.choice = a.ledger.Language()
		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", "english"),
					huh.NewOption("Azerbaijani", "azerbaijani"),
				).
				Value(&vals.choice),
		)).WithTheme(formTheme())

	case dialogTheme:
		vals.choice = a.ledger.Theme()
		opts := make([]huh.Option[string], 0, len(theme.All))
		for _, t := range theme.All {
			opts = append(opts, huh.NewOption(t.Name, t.Name))
		}
		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(opts...).
				Value(&vals.choice),
		)).WithTheme(formTheme())

	case dialogSignIn:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Validate(validateRequired).
				Value(&vals.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validateRequired).
				Value(&vals.password),
		)).WithTheme(formTheme())

	case dialogSignUp:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(validateRequired).
				Value(&vals.name),
			huh.NewInput().
				Title("Email").
				Validate(validateRequired).
				Value(&vals.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validateRequired).
				Value(&vals.password),
		)).WithTheme(formTheme())

	case dialogNone:
		return a, nil, true
	}

	if a.width > 0 {
		form = form.WithWidth(a.contentWidth()).WithHeight(a.height)
	}

	a.dialog = kind
	a.form = form
	a.vals = vals
	return a, form.Init(), true
}

// updateDialog forwards messages to the active form and applies or discards
// it when it finishes.
func (a App) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			a.dialog = dialogNone
			a.form = nil
			a.vals = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		noticeCmd := a.applyDialog()
		a.dialog = dialogNone
		a.form = nil
		a.vals = nil
		return a, noticeCmd
	case huh.StateAborted:
		// Cancel discards all transient input; collections and sets are
		// untouched.
		a.dialog = dialogNone
		a.form = nil
		a.vals = nil
		return a, nil
	}

	return a, cmd
}

// applyDialog commits the completed form to the ledger.
func (a *App) applyDialog() tea.Cmd {
	vals := a.vals
	cur := a.ledger.DisplayCurrency()

	switch a.dialog {

	case dialogAddSpending:
		category := vals.category
		if category == addNewOption {
			category, _ = a.ledger.AddCategory(vals.newCategory)
			if category == "" {
				return nil
			}
		}
		amount, err := currency.ParseDisplay(vals.amount)
		if err != nil {
			return nil
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(vals.date), time.Local)
		if err != nil {
			return nil
		}
		a.ledger.AddSpending(model.Spending{
			ID:          model.NewID(),
			Category:    category,
			Amount:      currency.FromDisplay(amount, cur),
			Date:        date,
			Description: strings.TrimSpace(vals.description),
		})
		return a.setNotice("Spending added")

	case dialogAddSubscription:
		service := vals.service
		if service == addNewOption {
			service, _ = a.ledger.AddService(vals.newService)
			if service == "" {
				return nil
			}
		}
		amount, err := currency.ParseDisplay(vals.amount)
		if err != nil {
			return nil
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(vals.date), time.Local)
		if err != nil {
			return nil
		}
		a.ledger.AddSubscription(model.Subscription{
			ID:          model.NewID(),
			Service:     service,
			Amount:      currency.FromDisplay(amount, cur),
			NextPayment: date,
			Color:       vals.color,
			NotifyMail:  vals.notify,
		})
		return a.setNotice("Subscription added")

	case dialogUsername:
		if err := a.ledger.SetUsername(vals.name); err != nil {
			return nil
		}
		a.persistProfile()
		return a.setNotice("Username updated")

	case dialogBudget:
		amount, err := currency.ParseDisplay(vals.amount)
		if err != nil {
			return nil
		}
		if err := a.ledger.SetBudget(currency.FromDisplay(amount, cur)); err != nil {
			return nil
		}
		a.persistProfile()
		return a.setNotice("Budget updated")

	case dialogGoal:
		amount, err := currency.ParseDisplay(vals.amount)
		if err != nil {
			return nil
		}
		if err := a.ledger.SetGoal(currency.FromDisplay(amount, cur)); err != nil {
			return nil
		}
		a.persistProfile()
		return a.setNotice("Goal updated")

	case dialogCurrency:
		if err := a.ledger.SetCurrency(currency.Currency(vals.choice)); err != nil {
			return nil
		}
		a.persistProfile()
		return a.setNotice("Currency: " + vals.choice)

	case dialogLanguage:
		a.ledger.SetLanguage(vals.choice)
		a.persistProfile()
		return a.setNotice("Language: " + vals.choice)

	case dialogTheme:
		a.ledger.SetTheme(vals.choice)
		theme.SetActive(vals.choice)
		a.persistProfile()
		return a.setNotice("Theme: " + vals.choice)

	case dialogSignIn:
		// Decorative form; the payload is acknowledged and dropped.
		return a.setNotice("Signed in as " + vals.email + " (demo)")

	case dialogSignUp:
		return a.setNotice("Account created for " + vals.email + " (demo)")
	}

	return nil
}

// persistProfile saves the profile scalars to the config file, best-effort.
func (a *App) persistProfile() {
	cfg, _ := config.Load()
	cfg.Profile.Username = a.ledger.Username()
	cfg.Profile.BudgetUSD = float64(a.ledger.Budget())
	cfg.Profile.GoalUSD = float64(a.ledger.Goal())
	cfg.Appearance.Currency = string(a.ledger.DisplayCurrency())
	cfg.Appearance.Language = a.ledger.Language()
	cfg.Appearance.Theme = a.ledger.Theme()
	_ = config.Save(cfg)
}

// formTheme builds a huh theme from the active palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := theme.Active
	t.Focused.Title = t.Focused.Title.Foreground(p.AccentBright).Bold(true)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Accent)
	t.Blurred.Title = t.Blurred.Title.Foreground(p.TextMuted)
	return t
}
