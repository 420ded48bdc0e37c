package customer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/observability"
	"github.com/BruksfildServices01/customer-service/internal/security"
	"github.com/BruksfildServices01/customer-service/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Name     *string
	Email    *string
	CPF      *string
	Password *string

	// ActorID is the authenticated customer performing the creation, if any.
	ActorID *uint
	// Kind labels the creation path in metrics and audit ("admin", "register", "seed").
	Kind string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *observability.Metrics
	logger  *zap.Logger
}

func NewCreate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Create {
	return &Create{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute inserts without a prior existence check; the unique indexes decide
// and a violation is then classified for the caller.
func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Customer, error) {

	c := &models.Customer{
		Name:  in.Name,
		Email: normalized(in.Email, validators.NormalizeEmail),
		CPF:   normalized(in.CPF, validators.NormalizeCPF),
	}

	if c.Email != nil && !validators.IsEmail(*c.Email) {
		return nil, domain.ErrInvalidEmail
	}

	if in.Password != nil {
		hashed, err := security.HashPassword(*in.Password)
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, domain.ErrPasswordTooLong
		}
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		c.HashedPassword = &hashed
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConstraintViolation) {
			return nil, uc.classifyViolation(ctx, c)
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	uc.metrics.IncrCustomerCreated(in.Kind)
	uc.audit.Dispatch(audit.Event{
		CustomerID: in.ActorID,
		Action:     audit.ActionCustomerCreated,
		Entity:     audit.EntityCustomer,
		EntityID:   &c.ID,
		Metadata:   map[string]any{"kind": in.Kind},
	})

	return c, nil
}

func (uc *Create) classifyViolation(ctx context.Context, c *models.Customer) error {
	if c.Email != nil {
		if _, err := uc.repo.FindByEmail(ctx, *c.Email); err == nil {
			uc.logger.Warn("customer email already registered", zap.String("email", *c.Email))
			return domain.ErrDuplicateEmail
		}
	}
	if c.CPF != nil {
		if _, err := uc.repo.FindByCPF(ctx, *c.CPF); err == nil {
			uc.logger.Warn("customer cpf already registered")
			return domain.ErrDuplicateCPF
		}
	}
	return domain.ErrConstraintViolation
}

// normalized applies fn and maps blank values to nil so they are stored as NULL.
func normalized(v *string, fn func(string) string) *string {
	if v == nil {
		return nil
	}
	n := fn(*v)
	if n == "" {
		return nil
	}
	return &n
}
