package spendingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO spending")
	detail := &domain.SpendingDetail{
		ProjectID:       0,
		AmountBase:      "10000000000000000000",
		Category:        "materials",
		Description:     "asphalt",
		DescriptionHash: "0xaa",
		SpentBy:         "0x742d35cc6634c0532925a3b844bc9e7595f1beb5",
		TxHash:          "0x01",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Detail saved with generated id",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), detail.ProjectID, detail.AmountBase, detail.Category, detail.Description,
						detail.DescriptionHash, detail.SpentBy, detail.TxHash, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Create(context.Background(), detail)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, err = uuid.Parse(saved.ID)
			assert.NoError(t, err)
			assert.False(t, saved.CreatedAt.IsZero())
			assert.Empty(t, detail.ID, "input is not mutated")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByProject(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM spending")
	columns := []string{"id", "project_id", "amount_base", "category", "description", "description_hash", "spent_by", "tx_hash", "created_at"}
	at := time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.SpendingDetail
	}{
		{
			name: "Details found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(uint64(1)).WillReturnRows(pgxmock.NewRows(columns).
					AddRow("7f6c3c1e-0d7a-4b55-9a8e-3f1d2b9c0a11", uint64(1), "5", "labor", "crew", "0xbb", "0xcc", "0x02", at))
			},
			result: []domain.SpendingDetail{{
				ID: "7f6c3c1e-0d7a-4b55-9a8e-3f1d2b9c0a11", ProjectID: 1, AmountBase: "5", Category: "labor",
				Description: "crew", DescriptionHash: "0xbb", SpentBy: "0xcc", TxHash: "0x02", CreatedAt: at,
			}},
		},
		{
			name: "No details",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(uint64(1)).WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(uint64(1)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByProject(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
