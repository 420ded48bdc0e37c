package customer

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
)

type GetInput struct {
	// CustomerID selects a single customer when non-zero.
	CustomerID uint
	Skip       int
	Limit      int
}

// GetResult holds either Customer or the page in Customers.
type GetResult struct {
	Customer  *models.Customer
	Customers []models.Customer
	Total     int64
}

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(
	ctx context.Context,
	in GetInput,
) (*GetResult, error) {

	if in.CustomerID != 0 {
		c, err := uc.repo.FindByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		return &GetResult{Customer: c}, nil
	}

	customers, err := uc.repo.List(ctx, in.Skip, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return &GetResult{Customers: customers, Total: total}, nil
}
