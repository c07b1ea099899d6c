package database

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrTxDone is returned when a unit of work is committed after it already finished.
var ErrTxDone = errors.New("unit of work already committed or rolled back")

// UnitOfWork is one request's transaction. It is committed at most once;
// anything not committed is rolled back and its compensations run.
type UnitOfWork struct {
	tx          *gorm.DB
	mu          sync.Mutex
	done        bool
	onRollback  []func()
	afterCommit []func()
}

// NewUnitOfWork begins a transaction bound to ctx.
func (d *DBinstanceStruct) NewUnitOfWork(ctx context.Context) (*UnitOfWork, error) {
	tx := d.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{tx: tx}, nil
}

// Tx returns the transaction handle for queries.
func (u *UnitOfWork) Tx() *gorm.DB {
	return u.tx
}

// OnRollback registers fn to undo a side effect outside the database if the work is not committed.
func (u *UnitOfWork) OnRollback(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onRollback = append(u.onRollback, fn)
}

// AfterCommit registers fn to run once the transaction committed.
func (u *UnitOfWork) AfterCommit(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.afterCommit = append(u.afterCommit, fn)
}

// Done reports whether the unit of work was committed or rolled back.
func (u *UnitOfWork) Done() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.done
}

// Commit commits the transaction. A failed commit runs the rollback compensations.
func (u *UnitOfWork) Commit() error {
	u.mu.Lock()
	if u.done {
		u.mu.Unlock()
		return ErrTxDone
	}
	u.done = true
	err := u.tx.Commit().Error
	hooks := u.afterCommit
	if err != nil {
		hooks = u.onRollback
	}
	u.mu.Unlock()

	runReverse(hooks)
	return err
}

// Rollback aborts the transaction unless it was already finished.
func (u *UnitOfWork) Rollback() error {
	u.mu.Lock()
	if u.done {
		u.mu.Unlock()
		return nil
	}
	u.done = true
	err := u.tx.Rollback().Error
	hooks := u.onRollback
	u.mu.Unlock()

	runReverse(hooks)
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		slog.Error("rollback failed", "error", err)
		return err
	}
	return nil
}

func runReverse(hooks []func()) {
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

const unitOfWorkKey = "unit_of_work"

// SetUnitOfWork attaches uow to the request.
func SetUnitOfWork(c *gin.Context, uow *UnitOfWork) {
	c.Set(unitOfWorkKey, uow)
}

// GetUnitOfWork returns the request's unit of work.
func GetUnitOfWork(c *gin.Context) (*UnitOfWork, error) {
	v, ok := c.Get(unitOfWorkKey)
	if !ok {
		return nil, errors.New("no unit of work in request context")
	}
	uow, ok := v.(*UnitOfWork)
	if !ok {
		return nil, errors.New("Failed to assert type")
	}
	return uow, nil
}
