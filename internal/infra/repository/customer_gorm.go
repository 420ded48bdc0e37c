package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/httperr"
	"github.com/BruksfildServices01/customer-service/internal/models"
)

type CustomerGormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCustomerGormRepository(db *gorm.DB, logger *zap.Logger) *CustomerGormRepository {
	return &CustomerGormRepository{db: db, logger: logger}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

// Create inserts c and fills its generated fields. Unique violations on
// email or cpf come back wrapped in domain.ErrConstraintViolation.
func (r *CustomerGormRepository) Create(
	ctx context.Context,
	c *models.Customer,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
		}
		return err
	}

	r.logger.Info("customer created", zap.Uint("customer_id", c.ID))
	return nil
}

func (r *CustomerGormRepository) CreateAnonymous(
	ctx context.Context,
) (*models.Customer, error) {

	name := models.AnonymousName
	c := &models.Customer{Name: &name}

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}

	r.logger.Info("anonymous customer created", zap.Uint("customer_id", c.ID))
	return c, nil
}

func (r *CustomerGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *CustomerGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {
	return r.first(ctx, "id", id)
}

func (r *CustomerGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Customer, error) {
	return r.first(ctx, "email", email)
}

func (r *CustomerGormRepository) FindByCPF(
	ctx context.Context,
	cpf string,
) (*models.Customer, error) {
	return r.first(ctx, "cpf", cpf)
}

// first never leaks storage failures to callers: they are logged and reported
// as domain.ErrNotFound.
func (r *CustomerGormRepository) first(
	ctx context.Context,
	column string,
	value any,
) (*models.Customer, error) {

	var c models.Customer
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		First(&c).Error

	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrNotFound
	default:
		r.logger.Error("error fetching customer",
			zap.String("by", column),
			zap.Error(err),
		)
		return nil, domain.ErrNotFound
	}
}

func (r *CustomerGormRepository) List(
	ctx context.Context,
	skip int,
	limit int,
) ([]models.Customer, error) {

	if skip < 0 {
		skip = domain.DefaultSkip
	}
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *CustomerGormRepository) Count(
	ctx context.Context,
) (int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
