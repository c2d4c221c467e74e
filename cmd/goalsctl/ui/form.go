// Package ui holds the interactive prompts and printers used by goalsctl.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/redmonkez12/goals-api/internal/auth"
	"github.com/redmonkez12/goals-api/internal/goal"
	"github.com/redmonkez12/goals-api/internal/user"
	"github.com/redmonkez12/goals-api/internal/validate"
)

// SignUpForm asks for whichever sign-up fields are still empty.
func SignUpForm(u *user.CreateUser) error {
	var fields []huh.Field
	if u.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Placeholder("John Doe").
			Value(&u.Name).
			Validate(validate.Name))
	}
	if u.Email == "" {
		fields = append(fields, emailInput(&u.Email))
	}
	if u.Password == "" {
		fields = append(fields, passwordInput(&u.Password))
	}
	return run(fields)
}

// SignInForm asks for whichever credentials are still empty.
func SignInForm(c *auth.SignInCredentials) error {
	var fields []huh.Field
	if c.Email == "" {
		fields = append(fields, emailInput(&c.Email))
	}
	if c.Password == "" {
		fields = append(fields, passwordInput(&c.Password))
	}
	return run(fields)
}

// GoalForm asks for the goal text when it was not passed as a flag.
func GoalForm(g *goal.CreateGoal) error {
	if g.Text != "" {
		return nil
	}
	return run([]huh.Field{
		huh.NewText().
			Title("Goal").
			Description(fmt.Sprintf("Between %d and %d characters", validate.GoalTextMinLength, validate.GoalTextMaxLength)).
			Value(&g.Text).
			Validate(validate.GoalText),
	})
}

func emailInput(v *string) huh.Field {
	return huh.NewInput().
		Title("E-mail").
		Placeholder("john@doe.com").
		Value(v).
		Validate(validate.Email)
}

func passwordInput(v *string) huh.Field {
	return huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(v).
		Validate(validate.Password)
}

func run(fields []huh.Field) error {
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCatppuccin()).
		Run()
}

// PrintSuccess prints a one-line confirmation.
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// PrintSignedUser prints the sign-in result including the token.
func PrintSignedUser(u *auth.SignedUser) {
	fmt.Println(titleStyle.Render("Signed in"))
	printField("ID", u.ID)
	printField("Name", u.Name)
	printField("E-mail", u.Email)
	printField("Token", u.Token)
	fmt.Println()
}

// PrintGoals prints one line per goal.
func PrintGoals(goals []goal.Goal) {
	if len(goals) == 0 {
		fmt.Println(labelStyle.Width(0).Render("No goals yet"))
		return
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Goals (%d)", len(goals))))
	for _, g := range goals {
		printField(g.CreatedAt.Format("2006-01-02"), g.Text)
	}
	fmt.Println()
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("Error: " + msg))
}

func printField(label, value string) {
	fmt.Println("  " + labelStyle.Render(label) + strings.TrimSpace(value))
}
