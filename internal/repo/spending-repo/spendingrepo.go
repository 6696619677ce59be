package spendingrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, detail *domain.SpendingDetail) (*domain.SpendingDetail, error) {
	saved := *detail
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO spending (id, project_id, amount_base, category, description, description_hash, spent_by, tx_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, saved.ID, saved.ProjectID, saved.AmountBase, saved.Category, saved.Description,
		saved.DescriptionHash, saved.SpentBy, saved.TxHash, saved.CreatedAt)
	if err != nil {
		zap.L().Error("can't save spending detail", zap.Uint64("project", saved.ProjectID), zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) ListByProject(ctx context.Context, projectID uint64) ([]domain.SpendingDetail, error) {
	query := `
		SELECT id, project_id, amount_base, category, description, description_hash, spent_by, tx_hash, created_at
		FROM spending
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		zap.L().Error("can't get spending details", zap.Uint64("project", projectID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.SpendingDetail
	for rows.Next() {
		var d domain.SpendingDetail
		err := rows.Scan(&d.ID, &d.ProjectID, &d.AmountBase, &d.Category, &d.Description, &d.DescriptionHash, &d.SpentBy, &d.TxHash, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan spending row", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
