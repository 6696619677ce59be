package dto

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/units"
)

type ProjectDTO struct {
	ID              uint64   `json:"id" example:"0"`
	Name            string   `json:"name" example:"School Infrastructure Project"`
	Description     string   `json:"description"`
	DataHash        string   `json:"data_hash"`
	Metadata        string   `json:"metadata" example:"verified"`
	Allocated       string   `json:"allocated" example:"50"`
	Spent           string   `json:"spent" example:"32.5"`
	Remaining       string   `json:"remaining" example:"17.5"`
	Utilization     float64  `json:"utilization" example:"65"`
	Owner           string   `json:"owner"`
	Approvers       []string `json:"approvers"`
	IsActive        bool     `json:"is_active"`
	Status          string   `json:"status" example:"active"`
	CreatedAt       int64    `json:"created_at" example:"1705276800"`
	CreatedAtString string   `json:"created_at_iso" example:"2024-01-15T00:00:00Z"`
}

type DashboardResponseDTO struct {
	Projects       []ProjectDTO `json:"projects"`
	TotalAllocated string       `json:"total_allocated" example:"455"`
	TotalSpent     string       `json:"total_spent" example:"252.8"`
	TotalRemaining string       `json:"total_remaining" example:"202.2"`
	ActiveCount    int          `json:"active_count" example:"4"`
	ChainID        uint64       `json:"chain_id,omitempty" example:"11155111"`
	Demo           bool         `json:"demo"`
	Warnings       []string     `json:"warnings,omitempty"`
}

type SpendingEntryDTO struct {
	Amount          string    `json:"amount" example:"10"`
	Category        string    `json:"category" example:"materials"`
	SpentBy         string    `json:"spent_by"`
	Timestamp       time.Time `json:"timestamp"`
	DescriptionHash string    `json:"description_hash"`
	Approved        bool      `json:"approved"`
	Description     string    `json:"description,omitempty"`
	TxHash          string    `json:"tx_hash,omitempty"`
	Verified        bool      `json:"verified"`
}

type ProjectDetailsResponseDTO struct {
	Project  ProjectDTO         `json:"project"`
	Spending []SpendingEntryDTO `json:"spending"`
	Demo     bool               `json:"demo"`
	Warnings []string           `json:"warnings,omitempty"`
}

type CreateProjectRequestDTO struct {
	Name            string `json:"name" example:"Bridge Repair"`
	Description     string `json:"description" example:"Replace the deck of the river bridge"`
	AllocatedAmount string `json:"allocated_amount" example:"50"`
	ProjectOwner    string `json:"project_owner,omitempty" example:"0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5"`
}

type SpendRequestDTO struct {
	Amount      string `json:"amount" example:"10"`
	Category    string `json:"category" example:"materials"`
	Description string `json:"description" example:"Steel beams"`
}

type StatusRequestDTO struct {
	Status string `json:"status" example:"paused"`
}

type AddressRequestDTO struct {
	Address string `json:"address" example:"0x8ba1f109551bD432803012645Ac136ddd64DBA72"`
}

type WriteResultDTO struct {
	OperationID string  `json:"operation_id,omitempty"`
	TxHash      string  `json:"tx_hash"`
	ProjectID   *uint64 `json:"project_id,omitempty"`
	Status      string  `json:"status" example:"committed"`
	Warning     string  `json:"warning,omitempty"`
}

type OperationDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind" example:"spend_funds"`
	Status    string    `json:"status" example:"partial"`
	ProjectID *uint64   `json:"project_id,omitempty"`
	TxHash    string    `json:"tx_hash,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReconcileResponseDTO struct {
	Replayed int      `json:"replayed"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// DisplayName falls back to the ledger id when no off-chain name is known.
func DisplayName(p *domain.Project) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Project #%d", p.ID)
}

func FromProject(p *domain.Project, decimals int32) ProjectDTO {
	approvers := make([]string, 0, len(p.Approvers))
	for _, a := range p.Approvers {
		approvers = append(approvers, a.Hex())
	}
	out := ProjectDTO{
		ID:          p.ID,
		Name:        DisplayName(p),
		Description: p.Description,
		DataHash:    p.DataHash.Hex(),
		Metadata:    string(p.Metadata),
		Allocated:   units.ToDisplay(p.AllocatedAmount, decimals),
		Spent:       units.ToDisplay(p.SpentAmount, decimals),
		Remaining:   units.ToDisplay(units.Remaining(p.AllocatedAmount, p.SpentAmount), decimals),
		Utilization: units.Utilization(p.AllocatedAmount, p.SpentAmount),
		Owner:       p.ProjectOwner.Hex(),
		Approvers:   approvers,
		IsActive:    p.IsActive,
		Status:      p.Status.String(),
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = p.CreatedAt.Unix()
		out.CreatedAtString = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func FromDashboard(d *domain.Dashboard, decimals int32) DashboardResponseDTO {
	projects := make([]ProjectDTO, 0, len(d.Projects))
	for i := range d.Projects {
		projects = append(projects, FromProject(&d.Projects[i], decimals))
	}
	return DashboardResponseDTO{
		Projects:       projects,
		TotalAllocated: units.ToDisplay(d.TotalAllocated, decimals),
		TotalSpent:     units.ToDisplay(d.TotalSpent, decimals),
		TotalRemaining: units.ToDisplay(d.TotalRemaining, decimals),
		ActiveCount:    d.ActiveCount,
		ChainID:        d.ChainID,
		Demo:           d.Demo,
		Warnings:       d.Warnings,
	}
}

func FromProjectDetails(d *domain.ProjectDetails, decimals int32) ProjectDetailsResponseDTO {
	spending := make([]SpendingEntryDTO, 0, len(d.Spending))
	for _, e := range d.Spending {
		entry := SpendingEntryDTO{
			Amount:          units.ToDisplay(e.Record.Amount, decimals),
			Category:        e.Record.Category,
			SpentBy:         e.Record.SpentBy.Hex(),
			Timestamp:       e.Record.Timestamp,
			DescriptionHash: e.Record.DescriptionHash.Hex(),
			Approved:        e.Record.Approved,
			Verified:        e.Verified,
		}
		if e.Detail != nil {
			entry.Description = e.Detail.Description
			entry.TxHash = e.Detail.TxHash
		}
		spending = append(spending, entry)
	}
	return ProjectDetailsResponseDTO{
		Project:  FromProject(&d.Project, decimals),
		Spending: spending,
		Demo:     d.Demo,
		Warnings: d.Warnings,
	}
}

func FromWriteResult(r *domain.WriteResult) WriteResultDTO {
	return WriteResultDTO{
		OperationID: r.OperationID,
		TxHash:      r.TxHash.Hex(),
		ProjectID:   r.ProjectID,
		Status:      string(r.Status),
		Warning:     r.Warning,
	}
}

func FromOperations(ops []domain.Operation) []OperationDTO {
	out := make([]OperationDTO, 0, len(ops))
	for _, op := range ops {
		out = append(out, OperationDTO{
			ID:        op.ID,
			Kind:      string(op.Kind),
			Status:    string(op.Status),
			ProjectID: op.ProjectID,
			TxHash:    op.TxHash,
			Error:     op.Error,
			CreatedAt: op.CreatedAt,
			UpdatedAt: op.UpdatedAt,
		})
	}
	return out
}
