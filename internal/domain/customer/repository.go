package customer

import (
	"context"

	"github.com/BruksfildServices01/customer-service/internal/models"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

type Repository interface {
	// -------- Write --------
	Create(
		ctx context.Context,
		c *models.Customer,
	) error

	CreateAnonymous(
		ctx context.Context,
	) (*models.Customer, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Read (absent or failed → ErrNotFound) --------
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Customer, error)

	FindByCPF(
		ctx context.Context,
		cpf string,
	) (*models.Customer, error)

	List(
		ctx context.Context,
		skip int,
		limit int,
	) ([]models.Customer, error)

	Count(
		ctx context.Context,
	) (int64, error)
}
