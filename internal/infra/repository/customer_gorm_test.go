package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/infra/repository"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/testutil"
)

func newCustomerRepo(t *testing.T) *repository.CustomerGormRepository {
	t.Helper()
	return repository.NewCustomerGormRepository(testutil.NewDB(t), zap.NewNop())
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	c := &models.Customer{
		Name:           testutil.Ptr("Maria"),
		Email:          testutil.Ptr("maria@fiap.com.br"),
		CPF:            testutil.Ptr("12345678900"),
		HashedPassword: testutil.Ptr("hash"),
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	byID, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@fiap.com.br", *byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "maria@fiap.com.br")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	byCPF, err := repo.FindByCPF(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byCPF.ID)
}

func TestCustomerRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	_, err := repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByCPF(ctx, "00000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepository_DuplicateEmailIsConstraintViolation(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	require.NoError(t, repo.Create(ctx, &models.Customer{Email: testutil.Ptr("dup@x.com")}))

	err := repo.Create(ctx, &models.Customer{
		Name:  testutil.Ptr("Other"),
		Email: testutil.Ptr("dup@x.com"),
		CPF:   testutil.Ptr("999"),
	})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCustomerRepository_DuplicateCPFIsConstraintViolation(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	require.NoError(t, repo.Create(ctx, &models.Customer{CPF: testutil.Ptr("1")}))

	err := repo.Create(ctx, &models.Customer{CPF: testutil.Ptr("1")})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestCustomerRepository_AnonymousCustomersCoexist(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	a, err := repo.CreateAnonymous(ctx)
	require.NoError(t, err)
	b, err := repo.CreateAnonymous(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, models.AnonymousName, *a.Name)
	assert.True(t, a.IsAnonymous())
	assert.True(t, b.IsAnonymous())
}

func TestCustomerRepository_ListPaginatesInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(ctx, &models.Customer{
			Name:  testutil.Ptr(fmt.Sprintf("c%02d", i)),
			Email: testutil.Ptr(fmt.Sprintf("c%02d@x.com", i)),
		}))
	}

	first, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "c00", *first[0].Name)
	assert.Equal(t, "c09", *first[9].Name)

	rest, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, rest, 5)
	assert.Equal(t, "c10", *rest[0].Name)

	defaults, err := repo.List(ctx, -1, 0)
	require.NoError(t, err)
	assert.Len(t, defaults, domain.DefaultLimit)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
}

func TestCustomerRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepo(t)

	c, err := repo.CreateAnonymous(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrNotFound)

	_, err = repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepository_ReadFailureIsLoggedAsNotFound(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	gdb := testutil.NewDB(t)
	repo := repository.NewCustomerGormRepository(gdb, zap.New(core))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, logs.FilterMessage("error fetching customer").Len())
}
