package auth

import (
	"context"
	"errors"

	"go-portal/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedBreakGlassAdmin upserts the built-in administrator as a regular
// privileged employee record. Credentials come from the environment and are
// stored hashed; nothing in the login path special-cases this account.
func SeedBreakGlassAdmin(ctx context.Context, employees employee.Repository, email, password string) error {
	if email == "" || password == "" {
		return errors.New("break-glass admin email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	existing, err := employees.FindByEmail(ctx, email)
	if err == nil {
		existing.PasswordHash = string(hashed)
		existing.IsAdmin = true
		existing.Status = employee.StatusActive
		if err := employees.Update(ctx, existing); err != nil {
			return err
		}
		zap.L().Named("auth.seed").Info("break-glass admin refreshed", zap.String("employee_id", existing.ID.String()))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &employee.Employee{
		ID:           uuid.New(),
		FullName:     "Portal Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Department:   "Administration",
		Role:         "Administrator",
		IsAdmin:      true,
		Status:       employee.StatusActive,
	}
	if err := employees.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Named("auth.seed").Info("break-glass admin created", zap.String("employee_id", admin.ID.String()))
	return nil
}
