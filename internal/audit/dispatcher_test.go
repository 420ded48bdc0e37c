package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/testutil"
)

func TestDispatcher_PersistsEventsOnClose(t *testing.T) {
	gdb := testutil.NewDB(t)
	d := audit.NewDispatcher(audit.New(gdb), zap.NewNop())

	id := uint(3)
	d.Dispatch(audit.Event{
		CustomerID: &id,
		Action:     audit.ActionCustomerCreated,
		Entity:     audit.EntityCustomer,
		EntityID:   &id,
		Metadata:   map[string]any{"route": "/customers/register"},
	})
	d.Dispatch(audit.Event{Action: audit.ActionLoginFailed})
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, gdb.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, audit.ActionCustomerCreated, logs[0].Action)
	assert.Equal(t, uint(3), *logs[0].EntityID)
	assert.JSONEq(t, `{"route":"/customers/register"}`, logs[0].Metadata)
	assert.Nil(t, logs[1].CustomerID)
	assert.Empty(t, logs[1].Metadata)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *audit.Dispatcher

	assert.NotPanics(t, func() {
		d.Dispatch(audit.Event{Action: "x"})
		d.Close()
	})
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := audit.NewDispatcher(audit.New(testutil.NewDB(t)), zap.NewNop())

	d.Close()
	assert.NotPanics(t, d.Close)
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	gdb := testutil.NewDB(t)
	d := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(audit.Event{Action: audit.ActionTokenIssued})
	})

	var count int64
	require.NoError(t, gdb.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}
