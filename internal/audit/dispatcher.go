package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	ActionCustomerCreated  = "customer_created"
	ActionAnonymousCreated = "customer_anonymous_created"
	ActionAdminSeeded      = "admin_seeded"
	ActionTokenIssued      = "token_issued"
	ActionTokenRevoked     = "token_revoked"
	ActionLoginFailed      = "login_failed"
	EntityCustomer         = "customer"
	defaultQueueSize       = 100
)

type Event struct {
	CustomerID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher persists events on a single background worker so request
// handlers never wait on, or fail because of, the audit trail.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, defaultQueueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Warn("audit error",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch never blocks; a full queue drops the event, and so does a closed
// Dispatcher. A nil Dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queued ones are written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
