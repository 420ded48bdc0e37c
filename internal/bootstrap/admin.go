// Package bootstrap prepares persistent state the service expects on startup.
package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	"github.com/BruksfildServices01/customer-service/internal/config"
	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/security"
	"github.com/BruksfildServices01/customer-service/internal/validators"
)

// EnsureAdmin creates the configured admin customer unless one with the same
// email already exists. Failures are logged and never stop the process.
func EnsureAdmin(
	ctx context.Context,
	repo domain.Repository,
	admin config.AdminConfig,
	dispatcher *audit.Dispatcher,
	logger *zap.Logger,
) {

	if !admin.Complete() {
		logger.Error("admin credentials are not fully configured, skipping admin creation",
			zap.Bool("email_set", admin.Email != ""),
			zap.Bool("password_set", admin.Password != ""),
			zap.Bool("cpf_set", admin.CPF != ""),
			zap.Bool("name_set", admin.Name != ""),
		)
		return
	}

	email := validators.NormalizeEmail(admin.Email)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		logger.Info("admin customer already exists", zap.String("email", email))
		return
	}

	hashed, err := security.HashPassword(admin.Password)
	if err != nil {
		logger.Error("error hashing admin password", zap.Error(err))
		return
	}

	name := admin.Name
	cpf := validators.NormalizeCPF(admin.CPF)

	c := &models.Customer{
		Name:           &name,
		Email:          &email,
		CPF:            &cpf,
		HashedPassword: &hashed,
	}

	if err := repo.Create(ctx, c); err != nil {
		// Another instance may have seeded it between the lookup and the insert.
		if errors.Is(err, domain.ErrConstraintViolation) {
			logger.Warn("admin customer conflicts with an existing customer", zap.Error(err))
			return
		}
		logger.Error("error creating admin customer", zap.Error(err))
		return
	}

	dispatcher.Dispatch(audit.Event{
		Action:   audit.ActionAdminSeeded,
		Entity:   audit.EntityCustomer,
		EntityID: &c.ID,
	})

	logger.Info("admin customer created", zap.Uint("customer_id", c.ID))
}
