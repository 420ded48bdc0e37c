package customer

import (
	"context"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/validators"
)

type Identify struct {
	repo domain.Repository
}

func NewIdentify(repo domain.Repository) *Identify {
	return &Identify{repo: repo}
}

func (uc *Identify) Execute(ctx context.Context, cpf string) (*models.Customer, error) {
	normalized := validators.NormalizeCPF(cpf)
	if normalized == "" {
		return nil, domain.ErrNotFound
	}
	return uc.repo.FindByCPF(ctx, normalized)
}
