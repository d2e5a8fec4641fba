// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
)

// RecordRepository hands out read-only sessions on the record store
type RecordRepository interface {
	// Open acquires a connection for the duration of one request
	Open(ctx context.Context) (Session, error)
	Ping(ctx context.Context) error
}

// Session is a scoped, read-only connection. Close must be called on every
// path once the session was opened.
type Session interface {
	Count(ctx context.Context, table models.Table) (int64, error)
	// Window returns up to limit records after skipping offset, newest id first
	Window(ctx context.Context, table models.Table, offset, limit int) ([]models.Record, error)
	Close() error
}
