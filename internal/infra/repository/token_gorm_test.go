package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/infra/repository"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/testutil"
)

func TestTokenGormStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	customers := repository.NewCustomerGormRepository(gdb, zap.NewNop())
	store := repository.NewTokenGormStore(gdb)

	owner, err := customers.CreateAnonymous(ctx)
	require.NoError(t, err)

	active, err := store.IsActive(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.Save(ctx, "jti-1", owner.ID, time.Now().Add(time.Hour)))

	active, err = store.IsActive(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.Revoke(ctx, "jti-1"))

	active, err = store.IsActive(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, active)

	var tok models.Token
	require.NoError(t, gdb.Where("token = ?", "jti-1").First(&tok).Error)
	assert.True(t, tok.IsUsed)
	assert.Equal(t, owner.ID, tok.UserID)
}

func TestTokenGormStore_ExpiredAndPurge(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	store := repository.NewTokenGormStore(gdb)

	require.NoError(t, store.Save(ctx, "old", 1, time.Now().Add(-time.Minute)))
	require.NoError(t, store.Save(ctx, "new", 1, time.Now().Add(time.Hour)))

	active, err := store.IsActive(ctx, "old")
	require.NoError(t, err)
	assert.False(t, active)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	var remaining int64
	require.NoError(t, gdb.Model(&models.Token{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}
