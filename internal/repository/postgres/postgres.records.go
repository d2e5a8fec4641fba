// FilePath: internal/repository/postgres/postgres.records.go
package postgres

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/beeview/internal/database"
	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/models"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"
)

type RecordRepo struct {
	PostgresBaseRepo
}

func NewRecordRepository(db database.DB) *RecordRepo {
	return &RecordRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
}

// Open checks out a dedicated connection from the pool
func (r *RecordRepo) Open(ctx context.Context) (repository.Session, error) {
	conn, err := r.db.GetDB().Connx(ctx)
	if err != nil {
		return nil, errors.NewUnavailableError("record store unavailable", err)
	}
	return &recordSession{conn: conn}, nil
}

type recordSession struct {
	conn *sqlx.Conn
}

// tableName quotes a known table; anything else is rejected before reaching SQL
func tableName(table models.Table) (string, error) {
	if !table.Valid() {
		return "", errors.NewValidationError(fmt.Sprintf("unknown table %q", table), nil)
	}
	return pq.QuoteIdentifier(string(table)), nil
}

func (s *recordSession) Count(ctx context.Context, table models.Table) (int64, error) {
	name, err := tableName(table)
	if err != nil {
		return 0, err
	}

	var count int64
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, name)
	if err := s.conn.GetContext(ctx, &count, query); err != nil {
		return 0, errors.NewDatabaseError(fmt.Sprintf("failed to count %s records", table), err)
	}
	return count, nil
}

func (s *recordSession) Window(ctx context.Context, table models.Table, offset, limit int) ([]models.Record, error) {
	name, err := tableName(table)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY id DESC LIMIT $1 OFFSET $2`, name)
	rows, err := s.conn.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("failed to fetch %s records", table), err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, limit)
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, errors.NewDatabaseError(fmt.Sprintf("failed to scan %s record", table), err)
		}
		records = append(records, normalize(row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("failed to read %s records", table), err)
	}
	return records, nil
}

// normalize turns driver byte slices (numeric, bytea) into strings
func normalize(row map[string]interface{}) models.Record {
	record := make(models.Record, len(row))
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		record[k] = v
	}
	return record
}

func (s *recordSession) Close() error {
	if err := s.conn.Close(); err != nil {
		nuts.L.Warnf("[RecordRepo] Failed to release connection: %v", err)
		return errors.NewDatabaseError("failed to release connection", err)
	}
	return nil
}
