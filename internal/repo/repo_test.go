package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	metadatarepo "github.com/GlebRadaev/fundtracker/internal/repo/metadata-repo"
	profilerepo "github.com/GlebRadaev/fundtracker/internal/repo/profile-repo"
	spendingrepo "github.com/GlebRadaev/fundtracker/internal/repo/spending-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.True(t, repo.Enabled())
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &metadatarepo.Repository{}, repo.MetadataRepo)
	assert.IsType(t, &spendingrepo.Repository{}, repo.SpendingRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestEnabled(t *testing.T) {
	var missing *Repositories
	assert.False(t, missing.Enabled())
	assert.False(t, (&Repositories{}).Enabled())
}
