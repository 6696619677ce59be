package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

// Client is the typed surface of the FundTracker contract. It does no
// business validation; the ledger enforces its own rules and reports
// violations as *domain.RevertError.
type Client interface {
	GetProjectCount(ctx context.Context) (uint64, error)
	GetProject(ctx context.Context, id uint64) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	SpendingRecords(ctx context.Context, id uint64) ([]domain.SpendingRecord, error)

	CreateProject(ctx context.Context, opts *bind.TransactOpts, dataHash common.Hash, allocated *big.Int, owner common.Address) (*Receipt, error)
	SpendFunds(ctx context.Context, opts *bind.TransactOpts, id uint64, amount *big.Int, category string, descriptionHash common.Hash) (*Receipt, error)
	SetProjectStatus(ctx context.Context, opts *bind.TransactOpts, id uint64, status domain.ProjectStatus) (*Receipt, error)
	AddApprover(ctx context.Context, opts *bind.TransactOpts, id uint64, approver common.Address) (*Receipt, error)
	AddAdmin(ctx context.Context, opts *bind.TransactOpts, admin common.Address) (*Receipt, error)
	AddGovernmentOfficial(ctx context.Context, opts *bind.TransactOpts, official common.Address) (*Receipt, error)
}

type EventName string

const (
	EventProjectCreated EventName = "ProjectCreated"
	EventFundsSpent     EventName = "FundsSpent"
)

type Event struct {
	Name      EventName
	ProjectID uint64
	Account   common.Address
	Amount    *big.Int
}

// Receipt describes a mined, successful transaction. ProjectID is set for
// project creation.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	ProjectID   *uint64
	Events      []Event
}
