// Command goalsctl runs the goals use cases directly against the configured
// stores, without going through the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redmonkez12/goals-api/cmd/goalsctl/ui"
	"github.com/redmonkez12/goals-api/internal/app"
	"github.com/redmonkez12/goals-api/internal/auth"
	"github.com/redmonkez12/goals-api/internal/config"
	"github.com/redmonkez12/goals-api/internal/goal"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "goalsctl",
		Short:         "Manage users and goals from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")

	signUpCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new user",
		RunE:  runSignUp,
	}
	signUpCmd.Flags().String("name", "", "Display name")
	signUpCmd.Flags().String("email", "", "E-mail address")
	signUpCmd.Flags().String("password", "", "Password (prompted when omitted)")

	signInCmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print an access token",
		RunE:  runSignIn,
	}
	signInCmd.Flags().String("email", "", "E-mail address")
	signInCmd.Flags().String("password", "", "Password (prompted when omitted)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a user id or access token refers to an existing user",
		RunE:  runVerify,
	}
	verifyCmd.Flags().String("id", "", "User id")
	verifyCmd.Flags().String("token", "", "Access token issued by signin")

	addGoalCmd := &cobra.Command{
		Use:   "add-goal",
		Short: "Add a goal for a user",
		RunE:  runAddGoal,
	}
	addGoalCmd.Flags().String("token", "", "Access token issued by signin")
	addGoalCmd.Flags().String("user-id", "", "Owner id, used instead of --token")
	addGoalCmd.Flags().String("text", "", "Goal text (prompted when omitted)")

	listGoalsCmd := &cobra.Command{
		Use:   "list-goals",
		Short: "List a user's goals, newest first",
		RunE:  runListGoals,
	}
	listGoalsCmd.Flags().String("token", "", "Access token issued by signin")
	listGoalsCmd.Flags().String("user-id", "", "Owner id, used instead of --token")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE:  runMigrate,
	}

	rootCmd.AddCommand(signUpCmd, signInCmd, verifyCmd, addGoalCmd, listGoalsCmd, migrateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

// withApp loads config, builds the application and hands it to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Rate limiting guards the public HTTP endpoints only.
	cfg.RateLimit.Enabled = false

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.NewLogger(verbose)

	ctx := cmd.Context()
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func runSignUp(cmd *cobra.Command, args []string) error {
	newUser := user.CreateUser{}
	newUser.Name, _ = cmd.Flags().GetString("name")
	newUser.Email, _ = cmd.Flags().GetString("email")
	newUser.Password, _ = cmd.Flags().GetString("password")

	if err := ui.SignUpForm(&newUser); err != nil {
		return fmt.Errorf("form cancelled: %w", err)
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if err := a.SignUp.Execute(ctx, newUser); err != nil {
			return err
		}
		ui.PrintSuccess("User created: " + newUser.Email)
		return nil
	})
}

func runSignIn(cmd *cobra.Command, args []string) error {
	creds := auth.SignInCredentials{}
	creds.Email, _ = cmd.Flags().GetString("email")
	creds.Password, _ = cmd.Flags().GetString("password")

	if err := ui.SignInForm(&creds); err != nil {
		return fmt.Errorf("form cancelled: %w", err)
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		signed, err := a.SignIn.Execute(ctx, creds)
		if err != nil {
			return err
		}
		ui.PrintSignedUser(signed)
		return nil
	})
}

func runVerify(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	tok, _ := cmd.Flags().GetString("token")
	if id == "" && tok == "" {
		return errors.New("one of --id or --token is required")
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		userID, err := resolveUserID(a, id, tok)
		if err != nil {
			return err
		}
		if err := a.Verify.Execute(ctx, userID); err != nil {
			return err
		}
		ui.PrintSuccess("User verified: " + userID)
		return nil
	})
}

func runAddGoal(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("user-id")
	tok, _ := cmd.Flags().GetString("token")
	if id == "" && tok == "" {
		return errors.New("one of --user-id or --token is required")
	}

	newGoal := goal.CreateGoal{}
	newGoal.Text, _ = cmd.Flags().GetString("text")
	if err := ui.GoalForm(&newGoal); err != nil {
		return fmt.Errorf("form cancelled: %w", err)
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		userID, err := resolveUserID(a, id, tok)
		if err != nil {
			return err
		}
		if err := a.AddGoal.Execute(ctx, newGoal, userID); err != nil {
			return err
		}
		ui.PrintSuccess("Goal created")
		return nil
	})
}

func runListGoals(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("user-id")
	tok, _ := cmd.Flags().GetString("token")
	if id == "" && tok == "" {
		return errors.New("one of --user-id or --token is required")
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		userID, err := resolveUserID(a, id, tok)
		if err != nil {
			return err
		}
		goals, err := a.ListGoals.Execute(ctx, userID)
		if err != nil {
			return err
		}
		ui.PrintGoals(goals)
		return nil
	})
}

func runMigrate(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if err := a.Migrate(ctx); err != nil {
			return err
		}
		ui.PrintSuccess("Migrations applied")
		return nil
	})
}

// resolveUserID prefers an explicit id and otherwise reads the token subject.
func resolveUserID(a *app.App, id, tok string) (string, error) {
	if id != "" {
		return id, nil
	}
	claims, err := a.Tokens.Verify(tok)
	if err != nil {
		return "", fmt.Errorf("token rejected: %w", err)
	}
	return claims.UserID, nil
}
