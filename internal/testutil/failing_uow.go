package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/db"
)

// FailingWriteUoW is a test UoW whose transactions reject every
// ExecContext call whose SQL contains Match, returning Err. Reads pass
// through, so callers can observe that nothing was committed.
type FailingWriteUoW struct {
	DB    *sql.DB
	Match string
	Err   error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingWrites{DBTX: tx, match: u.Match, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	match string
	err   error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
