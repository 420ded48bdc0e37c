package customer

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/observability"
)

type CreateAnonymous struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *observability.Metrics
}

func NewCreateAnonymous(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics *observability.Metrics,
) *CreateAnonymous {
	return &CreateAnonymous{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
	}
}

func (uc *CreateAnonymous) Execute(
	ctx context.Context,
	actorID *uint,
) (*models.Customer, error) {

	c, err := uc.repo.CreateAnonymous(ctx)
	if err != nil {
		return nil, fmt.Errorf("create anonymous customer: %w", err)
	}

	uc.metrics.IncrCustomerCreated("anonymous")
	uc.audit.Dispatch(audit.Event{
		CustomerID: actorID,
		Action:     audit.ActionAnonymousCreated,
		Entity:     audit.EntityCustomer,
		EntityID:   &c.ID,
	})

	return c, nil
}
