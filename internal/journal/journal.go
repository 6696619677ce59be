// Package journal records every dual write (ledger, then off-chain store) in
// a local SQLite file so that partially applied operations survive an
// unreachable off-chain store and can be replayed later.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

const memoryPath = ":memory:"

type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Update carries the outcome of an operation. Zero fields are left as they
// were, except Status and Error which are always written.
type Update struct {
	Status    domain.OperationStatus
	TxHash    string
	ProjectID *uint64
	Payload   []byte
	Error     string
}

// Open opens or creates the journal at path. ":memory:" keeps it in memory.
func Open(path string) (*Journal, error) {
	dsn := memoryPath
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Begin records a pending operation before anything is sent to the ledger.
func (j *Journal) Begin(ctx context.Context, kind domain.OperationKind, payload []byte) (*domain.Operation, error) {
	now := j.now()
	op := &domain.Operation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    domain.OpPending,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := j.db.ExecContext(ctx, `INSERT INTO operations
		(id, kind, status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		op.ID, string(op.Kind), string(op.Status), op.Payload, formatTime(now), formatTime(now),
	)
	if err != nil {
		zap.L().Error("can't journal operation", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	return op, nil
}

func (j *Journal) Update(ctx context.Context, id string, u Update) error {
	var projectID sql.NullInt64
	if u.ProjectID != nil {
		projectID = sql.NullInt64{Int64: int64(*u.ProjectID), Valid: true}
	}
	var payload any
	if u.Payload != nil {
		payload = u.Payload
	}
	res, err := j.db.ExecContext(ctx, `UPDATE operations SET
		status = ?,
		error = ?,
		tx_hash = CASE WHEN ? = '' THEN tx_hash ELSE ? END,
		project_id = COALESCE(?, project_id),
		payload = COALESCE(?, payload),
		updated_at = ?
		WHERE id = ?`,
		string(u.Status), u.Error, u.TxHash, u.TxHash, projectID, payload, formatTime(j.now()), id,
	)
	if err != nil {
		zap.L().Error("can't update journaled operation", zap.String("id", id), zap.Error(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (j *Journal) Get(ctx context.Context, id string) (*domain.Operation, error) {
	row := j.db.QueryRowContext(ctx, selectSQL+" WHERE id = ?", id)
	op, err := scanOperation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// List returns operations in creation order. An empty status lists all.
func (j *Journal) List(ctx context.Context, status domain.OperationStatus) ([]domain.Operation, error) {
	query := selectSQL
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at, rowid"

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list journaled operations", zap.Error(err))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, *op)
	}
	return ops, rows.Err()
}

const selectSQL = `SELECT id, kind, status, project_id, tx_hash, payload, error, created_at, updated_at FROM operations`

type scanner interface {
	Scan(dest ...any) error
}

func scanOperation(s scanner) (*domain.Operation, error) {
	var (
		op                   domain.Operation
		kind, status         string
		projectID            sql.NullInt64
		createdAt, updatedAt string
	)
	if err := s.Scan(&op.ID, &kind, &status, &projectID, &op.TxHash, &op.Payload, &op.Error, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	op.Kind = domain.OperationKind(kind)
	op.Status = domain.OperationStatus(status)
	if projectID.Valid {
		id := uint64(projectID.Int64)
		op.ProjectID = &id
	}
	op.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	op.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &op, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
