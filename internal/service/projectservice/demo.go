package projectservice

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/pkg/commitment"
)

const demoWarning = "ledger unavailable, showing sample data"

var demoRows = []struct {
	name, description string
	allocated, spent  string
	owner             string
	active            bool
}{
	{"School Infrastructure Project", "Construction and renovation of government schools in urban areas", "50", "32.5", "0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5", true},
	{"Healthcare Facility Upgrade", "Modernizing hospital equipment and facilities in rural regions", "75", "45.2", "0x8ba1f109551bD432803012645Ac136ddd64DBA72", true},
	{"Road Development Initiative", "Building and maintaining highways and local roads infrastructure", "150", "89.7", "0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5", true},
	{"Water Supply System", "Installing clean water distribution network for municipalities", "100", "60.3", "0x8ba1f109551bD432803012645Ac136ddd64DBA72", false},
	{"Digital Infrastructure", "Setting up broadband and digital connectivity in remote areas", "80", "25.1", "0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5", true},
}

func demoProjects(decimals int32) []domain.Project {
	projects := make([]domain.Project, 0, len(demoRows))
	for i, row := range demoRows {
		status := domain.StatusActive
		if !row.active {
			status = domain.StatusPaused
		}
		projects = append(projects, domain.Project{
			ID:              uint64(i),
			Name:            row.name,
			Description:     row.description,
			DataHash:        commitment.ProjectHash(row.name, row.description),
			AllocatedAmount: sampleBase(row.allocated, decimals),
			SpentAmount:     sampleBase(row.spent, decimals),
			ProjectOwner:    common.HexToAddress(row.owner),
			IsActive:        row.active,
			Status:          status,
			CreatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			Metadata:        domain.MetadataVerified,
		})
	}
	return projects
}

// sampleBase truncates where decimals is too small for the sample values.
func sampleBase(display string, decimals int32) *big.Int {
	return decimal.RequireFromString(display).Shift(decimals).Truncate(0).BigInt()
}
