// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// TransactionManager manages database transactions. Multi-record writes of
// the complaint lifecycle (complaint + accused rows + audit entry) run
// through it so they commit or roll back as one unit.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back; otherwise
// it is committed. The transaction handle travels in the context so that
// repositories called inside fn join the same transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the transaction from context if available.
// Repositories use this so that the same method works inside and outside
// a transaction boundary.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
