package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type projectTuple struct {
	DataHash        [32]byte
	AllocatedAmount *big.Int
	SpentAmount     *big.Int
	ProjectOwner    common.Address
	Approvers       []common.Address
	IsActive        bool
	CreatedAt       *big.Int
	Status          uint8
}

type spendingTuple struct {
	ProjectId       *big.Int
	Amount          *big.Int
	Category        string
	SpentBy         common.Address
	Timestamp       *big.Int
	Approved        bool
	DescriptionHash [32]byte
}

type projectCreatedLog struct {
	ProjectId       *big.Int
	ProjectOwner    common.Address
	AllocatedAmount *big.Int
	DataHash        [32]byte
}

type fundsSpentLog struct {
	ProjectId       *big.Int
	SpentBy         common.Address
	Amount          *big.Int
	Category        string
	DescriptionHash [32]byte
}

// Contract talks to a deployed FundTracker over JSON-RPC.
type Contract struct {
	address common.Address
	backend Backend
	bound   *bind.BoundContract
	closer  func()
}

func NewContract(address common.Address, backend Backend) *Contract {
	return &Contract{
		address: address,
		backend: backend,
		bound:   bind.NewBoundContract(address, ContractABI, backend, backend, backend),
	}
}

// Dial connects to the node at rawURL and binds the contract at address.
func Dial(ctx context.Context, rawURL string, address common.Address) (*Contract, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	c := NewContract(address, client)
	c.closer = client.Close
	return c, nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) Close() {
	if c.closer != nil {
		c.closer()
	}
}

func (c *Contract) call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		zap.L().Error("contract call failed", zap.String("method", method), zap.Error(err))
		return nil, classify(err, domain.ErrLedgerUnavailable)
	}
	return out, nil
}

func (c *Contract) GetProjectCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, "getProjectCount")
	if err != nil {
		return 0, err
	}
	count := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return count.Uint64(), nil
}

func (c *Contract) GetProject(ctx context.Context, id uint64) (*domain.Project, error) {
	count, err := c.GetProjectCount(ctx)
	if err != nil {
		return nil, err
	}
	if id >= count {
		return nil, domain.ErrNotFound
	}
	out, err := c.call(ctx, "getProject", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	tuple := abi.ConvertType(out[0], new(projectTuple)).(*projectTuple)
	project := tuple.toDomain(id)
	return &project, nil
}

func (c *Contract) ListProjects(ctx context.Context) ([]domain.Project, error) {
	out, err := c.call(ctx, "getAllProjects")
	if err != nil {
		return nil, err
	}
	tuples := *abi.ConvertType(out[0], new([]projectTuple)).(*[]projectTuple)
	projects := make([]domain.Project, 0, len(tuples))
	for i, t := range tuples {
		projects = append(projects, t.toDomain(uint64(i)))
	}
	return projects, nil
}

func (c *Contract) SpendingRecords(ctx context.Context, id uint64) ([]domain.SpendingRecord, error) {
	out, err := c.call(ctx, "getProjectSpendingRecords", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	tuples := *abi.ConvertType(out[0], new([]spendingTuple)).(*[]spendingTuple)
	records := make([]domain.SpendingRecord, 0, len(tuples))
	for _, t := range tuples {
		records = append(records, domain.SpendingRecord{
			ProjectID:       t.ProjectId.Uint64(),
			Amount:          t.Amount,
			Category:        t.Category,
			SpentBy:         t.SpentBy,
			Timestamp:       unixTime(t.Timestamp),
			DescriptionHash: t.DescriptionHash,
			Approved:        t.Approved,
		})
	}
	return records, nil
}

func (c *Contract) CreateProject(ctx context.Context, opts *bind.TransactOpts, dataHash common.Hash, allocated *big.Int, owner common.Address) (*Receipt, error) {
	if err := CheckAmount(allocated); err != nil {
		return nil, err
	}
	receipt, err := c.transact(ctx, opts, "createProject", [32]byte(dataHash), allocated, owner)
	if err != nil {
		return nil, err
	}
	if receipt.ProjectID == nil {
		// No ProjectCreated log: the new project is the last one.
		count, err := c.GetProjectCount(ctx)
		if err != nil {
			zap.L().Warn("can't resolve created project id", zap.String("tx", receipt.TxHash.Hex()), zap.Error(err))
			return receipt, nil
		}
		if count > 0 {
			id := count - 1
			receipt.ProjectID = &id
		}
	}
	return receipt, nil
}

func (c *Contract) SpendFunds(ctx context.Context, opts *bind.TransactOpts, id uint64, amount *big.Int, category string, descriptionHash common.Hash) (*Receipt, error) {
	if err := CheckAmount(amount); err != nil {
		return nil, err
	}
	return c.transact(ctx, opts, "spendFunds", new(big.Int).SetUint64(id), amount, category, [32]byte(descriptionHash))
}

func (c *Contract) SetProjectStatus(ctx context.Context, opts *bind.TransactOpts, id uint64, status domain.ProjectStatus) (*Receipt, error) {
	return c.transact(ctx, opts, "setProjectStatus", new(big.Int).SetUint64(id), uint8(status))
}

func (c *Contract) AddApprover(ctx context.Context, opts *bind.TransactOpts, id uint64, approver common.Address) (*Receipt, error) {
	return c.transact(ctx, opts, "addApprover", new(big.Int).SetUint64(id), approver)
}

func (c *Contract) AddAdmin(ctx context.Context, opts *bind.TransactOpts, admin common.Address) (*Receipt, error) {
	return c.transact(ctx, opts, "addAdmin", admin)
}

func (c *Contract) AddGovernmentOfficial(ctx context.Context, opts *bind.TransactOpts, official common.Address) (*Receipt, error) {
	return c.transact(ctx, opts, "addGovernmentOfficial", official)
}

func (c *Contract) transact(ctx context.Context, opts *bind.TransactOpts, method string, args ...any) (*Receipt, error) {
	if opts == nil || opts.Signer == nil {
		return nil, domain.ErrWalletNotConnected
	}
	txOpts := *opts
	txOpts.Context = ctx

	tx, err := c.bound.Transact(&txOpts, method, args...)
	if err != nil {
		zap.L().Error("can't send transaction", zap.String("method", method), zap.Error(err))
		return nil, classify(err, domain.ErrProviderFailure)
	}
	zap.L().Info("transaction sent", zap.String("method", method), zap.String("tx", tx.Hash().Hex()))

	mined, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		zap.L().Error("can't wait for transaction", zap.String("tx", tx.Hash().Hex()), zap.Error(err))
		return nil, classify(err, domain.ErrProviderFailure)
	}
	if mined.Status != types.ReceiptStatusSuccessful {
		return nil, &domain.RevertError{Reason: fmt.Sprintf("transaction %s failed", tx.Hash().Hex())}
	}
	return c.decodeReceipt(mined), nil
}

func (c *Contract) decodeReceipt(mined *types.Receipt) *Receipt {
	receipt := &Receipt{TxHash: mined.TxHash}
	if mined.BlockNumber != nil {
		receipt.BlockNumber = mined.BlockNumber.Uint64()
	}
	created := ContractABI.Events[string(EventProjectCreated)].ID
	spent := ContractABI.Events[string(EventFundsSpent)].ID

	for _, log := range mined.Logs {
		if log == nil || log.Address != c.address || len(log.Topics) == 0 {
			continue
		}
		switch log.Topics[0] {
		case created:
			var ev projectCreatedLog
			if err := c.bound.UnpackLog(&ev, string(EventProjectCreated), *log); err != nil {
				zap.L().Warn("can't decode ProjectCreated log", zap.Error(err))
				continue
			}
			id := ev.ProjectId.Uint64()
			receipt.ProjectID = &id
			receipt.Events = append(receipt.Events, Event{
				Name:      EventProjectCreated,
				ProjectID: id,
				Account:   ev.ProjectOwner,
				Amount:    ev.AllocatedAmount,
			})
		case spent:
			var ev fundsSpentLog
			if err := c.bound.UnpackLog(&ev, string(EventFundsSpent), *log); err != nil {
				zap.L().Warn("can't decode FundsSpent log", zap.Error(err))
				continue
			}
			receipt.Events = append(receipt.Events, Event{
				Name:      EventFundsSpent,
				ProjectID: ev.ProjectId.Uint64(),
				Account:   ev.SpentBy,
				Amount:    ev.Amount,
			})
		}
	}
	return receipt
}

func (t projectTuple) toDomain(id uint64) domain.Project {
	return domain.Project{
		ID:              id,
		DataHash:        t.DataHash,
		AllocatedAmount: t.AllocatedAmount,
		SpentAmount:     t.SpentAmount,
		ProjectOwner:    t.ProjectOwner,
		Approvers:       t.Approvers,
		IsActive:        t.IsActive,
		Status:          domain.ProjectStatus(t.Status),
		CreatedAt:       unixTime(t.CreatedAt),
		Metadata:        domain.MetadataMissing,
	}
}

func unixTime(v *big.Int) time.Time {
	if v == nil || v.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}
