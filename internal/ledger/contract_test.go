package ledger

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	owner        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	dataHash     = crypto.Keccak256Hash([]byte("Road repairResurfacing of Main St"))
	ether        = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

// fakeBackend answers only what the contract binding asks for. Anything else
// panics on the nil embedded interface.
type fakeBackend struct {
	Backend
	code        []byte
	results     map[string][]byte
	callErr     error
	estimateErr error
	receipt     *types.Receipt
	sent        *types.Transaction
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	method, err := ContractABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	return f.results[method.Name], nil
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100_000, f.estimateErr
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = tx
	return nil
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	r := *f.receipt
	r.TxHash = hash
	return &r, nil
}

// revertError mimics the error a node returns for a reverted eth_call.
type revertError struct {
	reason string
}

func (e *revertError) Error() string { return "execution reverted: " + e.reason }

func (e *revertError) ErrorData() any {
	stringTy, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: stringTy}}.Pack(e.reason)
	return hexutil.Encode(append(common.FromHex("0x08c379a0"), packed...))
}

func pack(t *testing.T, method string, values ...any) []byte {
	out, err := ContractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func sampleTuple() projectTuple {
	return projectTuple{
		DataHash:        dataHash,
		AllocatedAmount: new(big.Int).Mul(big.NewInt(50), ether),
		SpentAmount:     new(big.Int).Mul(big.NewInt(10), ether),
		ProjectOwner:    owner,
		Approvers:       []common.Address{},
		IsActive:        true,
		CreatedAt:       big.NewInt(1_700_000_000),
		Status:          0,
	}
}

func newReadBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{
		code: []byte{0x60, 0x80},
		results: map[string][]byte{
			"getProjectCount": pack(t, "getProjectCount", big.NewInt(1)),
			"getProject":      pack(t, "getProject", sampleTuple()),
			"getAllProjects":  pack(t, "getAllProjects", []projectTuple{sampleTuple()}),
			"getProjectSpendingRecords": pack(t, "getProjectSpendingRecords", []spendingTuple{{
				ProjectId:       big.NewInt(0),
				Amount:          new(big.Int).Mul(big.NewInt(10), ether),
				Category:        "materials",
				SpentBy:         owner,
				Timestamp:       big.NewInt(1_700_000_100),
				Approved:        true,
				DescriptionHash: crypto.Keccak256Hash([]byte("asphalt")),
			}}),
		},
	}
}

func TestContract_Reads(t *testing.T) {
	c := NewContract(contractAddr, newReadBackend(t))
	ctx := context.Background()

	count, err := c.GetProjectCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	project, err := c.GetProject(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), project.ID)
	assert.Equal(t, dataHash, project.DataHash)
	assert.Equal(t, owner, project.ProjectOwner)
	assert.Equal(t, "40000000000000000000", project.Remaining().String())
	assert.Equal(t, domain.StatusActive, project.Status)
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), project.CreatedAt)

	_, err = c.GetProject(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].IsActive)

	records, err := c.SpendingRecords(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "materials", records[0].Category)
	assert.Equal(t, crypto.Keccak256Hash([]byte("asphalt")), records[0].DescriptionHash)
}

func TestContract_ReadsUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		backend *fakeBackend
	}{
		{
			name:    "No contract code",
			backend: &fakeBackend{results: map[string][]byte{}},
		},
		{
			name:    "Node unreachable",
			backend: &fakeBackend{callErr: errors.New("dial tcp 127.0.0.1:8545: connection refused")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContract(contractAddr, tt.backend)
			_, err := c.ListProjects(context.Background())
			assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
		})
	}
}

func newWriteBackend(t *testing.T, status uint64, logs ...*types.Log) *fakeBackend {
	b := newReadBackend(t)
	b.receipt = &types.Receipt{Status: status, BlockNumber: big.NewInt(7), Logs: logs}
	return b
}

func newOpts(t *testing.T) *bind.TransactOpts {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(31337))
	require.NoError(t, err)
	return opts
}

func projectCreatedLogFor(t *testing.T, id int64) *types.Log {
	ev := ContractABI.Events[string(EventProjectCreated)]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(5), [32]byte(dataHash))
	require.NoError(t, err)
	return &types.Log{
		Address: contractAddr,
		Topics:  []common.Hash{ev.ID, common.BigToHash(big.NewInt(id)), common.BytesToHash(owner.Bytes())},
		Data:    data,
	}
}

func TestContract_CreateProject(t *testing.T) {
	tests := []struct {
		name       string
		logs       []*types.Log
		expectedID uint64
		events     int
	}{
		{
			name:       "Id from ProjectCreated log",
			logs:       []*types.Log{projectCreatedLogFor(t, 4)},
			expectedID: 4,
			events:     1,
		},
		{
			name:       "Id falls back to count minus one",
			expectedID: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newWriteBackend(t, types.ReceiptStatusSuccessful, tt.logs...)
			c := NewContract(contractAddr, backend)

			receipt, err := c.CreateProject(context.Background(), newOpts(t), dataHash, big.NewInt(5), owner)
			require.NoError(t, err)
			require.NotNil(t, receipt.ProjectID)
			assert.Equal(t, tt.expectedID, *receipt.ProjectID)
			assert.Len(t, receipt.Events, tt.events)
			assert.Equal(t, uint64(7), receipt.BlockNumber)
			require.NotNil(t, backend.sent)
			assert.Equal(t, backend.sent.Hash(), receipt.TxHash)
		})
	}
}

func TestContract_WriteErrors(t *testing.T) {
	tests := []struct {
		name        string
		prepare     func(b *fakeBackend)
		opts        func(t *testing.T) *bind.TransactOpts
		expectedErr error
		reason      string
	}{
		{
			name:        "Revert during estimation",
			prepare:     func(b *fakeBackend) { b.estimateErr = &revertError{reason: "Insufficient funds"} },
			opts:        newOpts,
			expectedErr: domain.ErrLedgerRevert,
			reason:      "Insufficient funds",
		},
		{
			name:        "Failed receipt",
			prepare:     func(b *fakeBackend) { b.receipt.Status = types.ReceiptStatusFailed },
			opts:        newOpts,
			expectedErr: domain.ErrLedgerRevert,
		},
		{
			name:        "No signer",
			prepare:     func(*fakeBackend) {},
			opts:        func(*testing.T) *bind.TransactOpts { return nil },
			expectedErr: domain.ErrWalletNotConnected,
		},
		{
			name:    "Rejected by wallet",
			prepare: func(*fakeBackend) {},
			opts: func(t *testing.T) *bind.TransactOpts {
				opts := newOpts(t)
				opts.Signer = func(common.Address, *types.Transaction) (*types.Transaction, error) {
					return nil, domain.ErrUserRejected
				}
				return opts
			},
			expectedErr: domain.ErrUserRejected,
		},
		{
			name:        "Node failure",
			prepare:     func(b *fakeBackend) { b.estimateErr = errors.New("header not found") },
			opts:        newOpts,
			expectedErr: domain.ErrProviderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newWriteBackend(t, types.ReceiptStatusSuccessful)
			tt.prepare(backend)
			c := NewContract(contractAddr, backend)

			_, err := c.SpendFunds(context.Background(), tt.opts(t), 0, big.NewInt(1), "materials", dataHash)
			require.ErrorIs(t, err, tt.expectedErr)
			if tt.reason != "" {
				var revert *domain.RevertError
				require.ErrorAs(t, err, &revert)
				assert.Equal(t, tt.reason, revert.Reason)
			}
		})
	}
}

func TestContract_AmountOutOfRange(t *testing.T) {
	backend := newWriteBackend(t, types.ReceiptStatusSuccessful)
	c := NewContract(contractAddr, backend)
	wrapped := new(big.Int).Lsh(big.NewInt(1), 256)

	_, err := c.SpendFunds(context.Background(), newOpts(t), 0, wrapped, "materials", dataHash)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, backend.sent)

	_, err = c.CreateProject(context.Background(), newOpts(t), dataHash, wrapped, contractAddr)
	require.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.Nil(t, backend.sent)

	assert.NoError(t, CheckAmount(new(big.Int).Sub(wrapped, big.NewInt(1))))
	assert.NoError(t, CheckAmount(nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
		reason   string
	}{
		{name: "Nil", err: nil, expected: nil},
		{name: "Revert with data", err: &revertError{reason: "Project is not active"}, expected: domain.ErrLedgerRevert, reason: "Project is not active"},
		{name: "Revert message only", err: errors.New("execution reverted: Not authorized"), expected: domain.ErrLedgerRevert, reason: "Not authorized"},
		{name: "No code", err: bind.ErrNoCode, expected: domain.ErrLedgerUnavailable},
		{name: "User rejected", err: domain.ErrUserRejected, expected: domain.ErrUserRejected},
		{name: "Canceled", err: context.Canceled, expected: context.Canceled},
		{name: "Other", err: errors.New("503 Service Unavailable"), expected: domain.ErrProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err, domain.ErrProviderFailure)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
			if tt.reason != "" {
				var revert *domain.RevertError
				require.ErrorAs(t, err, &revert)
				assert.Equal(t, tt.reason, revert.Reason)
			}
		})
	}
}
