package metadatarepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Put(ctx context.Context, meta *domain.ProjectMetadata) error {
	query := `
		INSERT INTO projects (project_id, name, description, data_hash, created_by, tx_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, data_hash = EXCLUDED.data_hash,
			created_by = EXCLUDED.created_by, tx_hash = EXCLUDED.tx_hash
	`
	_, err := r.db.Exec(ctx, query, meta.ProjectID, meta.Name, meta.Description, meta.DataHash, meta.CreatedBy, meta.TxHash, meta.CreatedAt)
	if err != nil {
		zap.L().Error("can't save project metadata", zap.Uint64("project", meta.ProjectID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id uint64) (*domain.ProjectMetadata, error) {
	query := `
		SELECT project_id, name, description, data_hash, created_by, tx_hash, created_at
		FROM projects
		WHERE project_id = $1
	`
	var meta domain.ProjectMetadata
	err := r.db.QueryRow(ctx, query, id).
		Scan(&meta.ProjectID, &meta.Name, &meta.Description, &meta.DataHash, &meta.CreatedBy, &meta.TxHash, &meta.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find project metadata", zap.Uint64("project", id), zap.Error(err))
		return nil, err
	}
	return &meta, nil
}
