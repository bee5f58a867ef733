package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/shift-scheduler/internal/auth"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/shift-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/shift-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/validators"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Create a user account that can log in to the API.

Example:
  api user create --email ana@example.com --name "Ana" --password secret123 --role MANAGER`,
	RunE: runUserCreate,
}

var (
	userEmail    string
	userName     string
	userPassword string
	userRole     string

	userCheckDomain bool
)

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "login email (required)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name (required)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "initial password, at least 8 characters (required)")
	userCreateCmd.Flags().StringVar(&userRole, "role", string(models.RoleWorker), "WORKER, MANAGER or ADMIN")
	userCreateCmd.Flags().BoolVar(&userCheckDomain, "check-domain", false, "also require the email domain to resolve (MX or A/AAAA)")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	emailCheck := validators.IsEmailSyntaxValid
	if userCheckDomain {
		emailCheck = validators.IsEmailDomainValid
	}

	u, err := buildUser(userEmail, userName, userPassword, userRole, emailCheck)
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(config.Load())
	if err != nil {
		return err
	}

	if err := infraRepo.NewUserGormRepository(db).Create(cmd.Context(), u); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", u.ID, u.Email, u.Role)
	return nil
}

func buildUser(email, name, password, role string, emailValid func(string) bool) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailValid(email) {
		return nil, fmt.Errorf("invalid email %q", email)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("password must have at least 8 characters")
	}

	r, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         r,
	}, nil
}
