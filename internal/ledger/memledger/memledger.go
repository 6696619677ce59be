package memledger

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/ledger"
)

// Revert reasons, worded as the deployed contract words them.
const (
	reasonNotCreator     = "Only admin or government official can create projects"
	reasonNotAdmin       = "Only admin can perform this action"
	reasonNotOwner       = "Only project owner or admin can perform this action"
	reasonNotSpender     = "Not authorized to spend from this project"
	reasonNoProject      = "Project does not exist"
	reasonInactive       = "Project is not active"
	reasonInsufficient   = "Insufficient funds"
	reasonZeroAmount     = "Amount must be greater than zero"
	reasonInvalidOwner   = "Invalid project owner"
	reasonInvalidStatus  = "Invalid status"
	reasonDuplicateEntry = "Already approver"
)

// Ledger is an in-process FundTracker. It keeps the contract's access rules
// so that memory mode and tests behave like a deployed contract.
type Ledger struct {
	mu        sync.RWMutex
	chainID   *big.Int
	admins    map[common.Address]bool
	officials map[common.Address]bool
	projects  []domain.Project
	records   map[uint64][]domain.SpendingRecord
	nonce     uint64
	block     uint64
	available bool
	now       func() time.Time
}

var _ ledger.Client = (*Ledger)(nil)

func New(chainID *big.Int, admin common.Address) *Ledger {
	return &Ledger{
		chainID:   new(big.Int).Set(chainID),
		admins:    map[common.Address]bool{admin: true},
		officials: make(map[common.Address]bool),
		records:   make(map[uint64][]domain.SpendingRecord),
		available: true,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

func (l *Ledger) ChainID() *big.Int {
	return new(big.Int).Set(l.chainID)
}

// SetAvailable simulates the node going down or coming back.
func (l *Ledger) SetAvailable(available bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.available = available
}

func (l *Ledger) GetProjectCount(_ context.Context) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.available {
		return 0, domain.ErrLedgerUnavailable
	}
	return uint64(len(l.projects)), nil
}

func (l *Ledger) GetProject(_ context.Context, id uint64) (*domain.Project, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.available {
		return nil, domain.ErrLedgerUnavailable
	}
	if id >= uint64(len(l.projects)) {
		return nil, domain.ErrNotFound
	}
	project := copyProject(l.projects[id])
	return &project, nil
}

func (l *Ledger) ListProjects(_ context.Context) ([]domain.Project, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.available {
		return nil, domain.ErrLedgerUnavailable
	}
	projects := make([]domain.Project, 0, len(l.projects))
	for _, p := range l.projects {
		projects = append(projects, copyProject(p))
	}
	return projects, nil
}

func (l *Ledger) SpendingRecords(_ context.Context, id uint64) ([]domain.SpendingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.available {
		return nil, domain.ErrLedgerUnavailable
	}
	if id >= uint64(len(l.projects)) {
		return nil, &domain.RevertError{Reason: reasonNoProject}
	}
	records := make([]domain.SpendingRecord, 0, len(l.records[id]))
	for _, r := range l.records[id] {
		r.Amount = new(big.Int).Set(r.Amount)
		records = append(records, r)
	}
	return records, nil
}

func (l *Ledger) CreateProject(ctx context.Context, opts *bind.TransactOpts, dataHash common.Hash, allocated *big.Int, owner common.Address) (*ledger.Receipt, error) {
	if err := ledger.CheckAmount(allocated); err != nil {
		return nil, err
	}
	return l.transact(ctx, opts, "createProject", []any{[32]byte(dataHash), allocated, owner}, func(from common.Address, receipt *ledger.Receipt) error {
		if !l.admins[from] && !l.officials[from] {
			return revert(reasonNotCreator)
		}
		if allocated == nil || allocated.Sign() <= 0 {
			return revert(reasonZeroAmount)
		}
		if owner == (common.Address{}) {
			return revert(reasonInvalidOwner)
		}
		id := uint64(len(l.projects))
		l.projects = append(l.projects, domain.Project{
			ID:              id,
			DataHash:        dataHash,
			AllocatedAmount: new(big.Int).Set(allocated),
			SpentAmount:     new(big.Int),
			ProjectOwner:    owner,
			IsActive:        true,
			Status:          domain.StatusActive,
			CreatedAt:       l.now(),
			Metadata:        domain.MetadataMissing,
		})
		receipt.ProjectID = &id
		receipt.Events = append(receipt.Events, ledger.Event{
			Name:      ledger.EventProjectCreated,
			ProjectID: id,
			Account:   owner,
			Amount:    new(big.Int).Set(allocated),
		})
		return nil
	})
}

func (l *Ledger) SpendFunds(ctx context.Context, opts *bind.TransactOpts, id uint64, amount *big.Int, category string, descriptionHash common.Hash) (*ledger.Receipt, error) {
	if err := ledger.CheckAmount(amount); err != nil {
		return nil, err
	}
	args := []any{new(big.Int).SetUint64(id), amount, category, [32]byte(descriptionHash)}
	return l.transact(ctx, opts, "spendFunds", args, func(from common.Address, receipt *ledger.Receipt) error {
		project, err := l.project(id)
		if err != nil {
			return err
		}
		if !project.IsActive {
			return revert(reasonInactive)
		}
		if from != project.ProjectOwner && !contains(project.Approvers, from) {
			return revert(reasonNotSpender)
		}
		if amount == nil || amount.Sign() <= 0 {
			return revert(reasonZeroAmount)
		}
		if amount.Cmp(project.Remaining()) > 0 {
			return revert(reasonInsufficient)
		}
		project.SpentAmount = new(big.Int).Add(project.SpentAmount, amount)
		l.records[id] = append(l.records[id], domain.SpendingRecord{
			ProjectID:       id,
			Amount:          new(big.Int).Set(amount),
			Category:        category,
			SpentBy:         from,
			Timestamp:       l.now(),
			DescriptionHash: descriptionHash,
			Approved:        true,
		})
		receipt.Events = append(receipt.Events, ledger.Event{
			Name:      ledger.EventFundsSpent,
			ProjectID: id,
			Account:   from,
			Amount:    new(big.Int).Set(amount),
		})
		return nil
	})
}

func (l *Ledger) SetProjectStatus(ctx context.Context, opts *bind.TransactOpts, id uint64, status domain.ProjectStatus) (*ledger.Receipt, error) {
	args := []any{new(big.Int).SetUint64(id), uint8(status)}
	return l.transact(ctx, opts, "setProjectStatus", args, func(from common.Address, _ *ledger.Receipt) error {
		project, err := l.project(id)
		if err != nil {
			return err
		}
		if from != project.ProjectOwner && !l.admins[from] {
			return revert(reasonNotOwner)
		}
		if status > domain.StatusCancelled {
			return revert(reasonInvalidStatus)
		}
		project.Status = status
		project.IsActive = status == domain.StatusActive
		return nil
	})
}

func (l *Ledger) AddApprover(ctx context.Context, opts *bind.TransactOpts, id uint64, approver common.Address) (*ledger.Receipt, error) {
	args := []any{new(big.Int).SetUint64(id), approver}
	return l.transact(ctx, opts, "addApprover", args, func(from common.Address, _ *ledger.Receipt) error {
		project, err := l.project(id)
		if err != nil {
			return err
		}
		if from != project.ProjectOwner && !l.admins[from] {
			return revert(reasonNotOwner)
		}
		if contains(project.Approvers, approver) {
			return revert(reasonDuplicateEntry)
		}
		project.Approvers = append(project.Approvers, approver)
		return nil
	})
}

func (l *Ledger) AddAdmin(ctx context.Context, opts *bind.TransactOpts, admin common.Address) (*ledger.Receipt, error) {
	return l.transact(ctx, opts, "addAdmin", []any{admin}, func(from common.Address, _ *ledger.Receipt) error {
		if !l.admins[from] {
			return revert(reasonNotAdmin)
		}
		l.admins[admin] = true
		return nil
	})
}

func (l *Ledger) AddGovernmentOfficial(ctx context.Context, opts *bind.TransactOpts, official common.Address) (*ledger.Receipt, error) {
	return l.transact(ctx, opts, "addGovernmentOfficial", []any{official}, func(from common.Address, _ *ledger.Receipt) error {
		if !l.admins[from] {
			return revert(reasonNotAdmin)
		}
		l.officials[official] = true
		return nil
	})
}

// transact signs a transaction carrying the encoded call so the wallet
// sees (and may reject) exactly what a deployed contract would get, then
// applies it atomically.
func (l *Ledger) transact(ctx context.Context, opts *bind.TransactOpts, method string, args []any, apply func(common.Address, *ledger.Receipt) error) (*ledger.Receipt, error) {
	if opts == nil || opts.Signer == nil {
		return nil, domain.ErrWalletNotConnected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	input, err := ledger.ContractABI.Pack(method, args...)
	if err != nil {
		return nil, &domain.RevertError{Reason: err.Error()}
	}

	l.mu.Lock()
	if !l.available {
		l.mu.Unlock()
		return nil, domain.ErrProviderFailure
	}
	nonce := l.nonce
	l.nonce++
	l.mu.Unlock()

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: big.NewInt(1),
		Gas:      100_000,
		Data:     input,
	})
	signed, err := opts.Signer(opts.From, tx)
	if err != nil {
		zap.L().Warn("transaction not signed", zap.String("method", method), zap.Error(err))
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	receipt := &ledger.Receipt{TxHash: signed.Hash()}
	if err := apply(opts.From, receipt); err != nil {
		zap.L().Info("transaction reverted", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	l.block++
	receipt.BlockNumber = l.block
	zap.L().Debug("transaction applied", zap.String("method", method), zap.String("tx", receipt.TxHash.Hex()))
	return receipt, nil
}

// project must be called with l.mu held.
func (l *Ledger) project(id uint64) (*domain.Project, error) {
	if id >= uint64(len(l.projects)) {
		return nil, revert(reasonNoProject)
	}
	return &l.projects[id], nil
}

func revert(reason string) error {
	return &domain.RevertError{Reason: reason}
}

func contains(list []common.Address, addr common.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}

func copyProject(p domain.Project) domain.Project {
	p.AllocatedAmount = new(big.Int).Set(p.AllocatedAmount)
	p.SpentAmount = new(big.Int).Set(p.SpentAmount)
	p.Approvers = append([]common.Address(nil), p.Approvers...)
	return p
}
