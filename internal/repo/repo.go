package repo

import (
	"github.com/GlebRadaev/fundtracker/internal/pg"
	metadatarepo "github.com/GlebRadaev/fundtracker/internal/repo/metadata-repo"
	profilerepo "github.com/GlebRadaev/fundtracker/internal/repo/profile-repo"
	spendingrepo "github.com/GlebRadaev/fundtracker/internal/repo/spending-repo"
	"github.com/GlebRadaev/fundtracker/internal/service/authservice"
	"github.com/GlebRadaev/fundtracker/internal/service/projectservice"
)

// Repositories is the off-chain store. Its zero value, with every field
// nil, stands for a disabled store.
type Repositories struct {
	ProfileRepo  authservice.Repo
	MetadataRepo projectservice.MetadataRepo
	SpendingRepo projectservice.SpendingRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:  profilerepo.New(conn),
		MetadataRepo: metadatarepo.New(conn),
		SpendingRepo: spendingrepo.New(conn),
	}
}

func (r *Repositories) Enabled() bool {
	return r != nil && r.MetadataRepo != nil && r.SpendingRepo != nil
}
