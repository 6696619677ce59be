package profilerepo

import (
	"context"
	"errors"
	"strings"

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

func (repo *Repository) Get(ctx context.Context, address string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := repo.db.QueryRow(ctx, "SELECT wallet_address, role, created_at, last_login FROM users WHERE wallet_address = $1", strings.ToLower(address)).
		Scan(&profile.WalletAddress, &profile.Role, &profile.CreatedAt, &profile.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile or, when it exists, refreshes last_login. An
// existing role is kept unless the incoming one is admin.
func (repo *Repository) Upsert(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	query := `
		INSERT INTO users (wallet_address, role, created_at, last_login)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (wallet_address) DO UPDATE SET
			last_login = EXCLUDED.last_login,
			role = CASE WHEN EXCLUDED.role = 'admin' THEN EXCLUDED.role ELSE users.role END
		RETURNING wallet_address, role, created_at, last_login
	`
	var saved domain.UserProfile
	err := repo.db.QueryRow(ctx, query, strings.ToLower(profile.WalletAddress), profile.Role, profile.CreatedAt, profile.LastLogin).
		Scan(&saved.WalletAddress, &saved.Role, &saved.CreatedAt, &saved.LastLogin)
	if err != nil {
		zap.L().Error("can't save user profile", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (repo *Repository) UpdateRole(ctx context.Context, address, role string) error {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET role = $2 WHERE wallet_address = $1", strings.ToLower(address), role)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
