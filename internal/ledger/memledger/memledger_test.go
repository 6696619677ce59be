package memledger

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

var chainID = big.NewInt(31337)

func newAccount(t *testing.T) *bind.TransactOpts {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	require.NoError(t, err)
	return opts
}

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

type fixture struct {
	ledger   *Ledger
	admin    *bind.TransactOpts
	owner    *bind.TransactOpts
	stranger *bind.TransactOpts
}

func newFixture(t *testing.T) *fixture {
	admin := newAccount(t)
	f := &fixture{
		ledger:   New(chainID, admin.From),
		admin:    admin,
		owner:    newAccount(t),
		stranger: newAccount(t),
	}
	receipt, err := f.ledger.CreateProject(context.Background(), admin, common.HexToHash("0x01"), eth(50), f.owner.From)
	require.NoError(t, err)
	require.NotNil(t, receipt.ProjectID)
	require.Equal(t, uint64(0), *receipt.ProjectID)
	return f
}

func assertRevert(t *testing.T, err error, reason string) {
	t.Helper()
	var revertErr *domain.RevertError
	require.ErrorAs(t, err, &revertErr)
	assert.Equal(t, reason, revertErr.Reason)
	assert.ErrorIs(t, err, domain.ErrLedgerRevert)
}

func TestCreateProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		opts      *bind.TransactOpts
		allocated *big.Int
		owner     common.Address
		reason    string
	}{
		{name: "Stranger cannot create", opts: f.stranger, allocated: eth(1), owner: f.owner.From, reason: reasonNotCreator},
		{name: "Zero allocation", opts: f.admin, allocated: big.NewInt(0), owner: f.owner.From, reason: reasonZeroAmount},
		{name: "Zero owner", opts: f.admin, allocated: eth(1), owner: common.Address{}, reason: reasonInvalidOwner},
		{name: "Admin creates", opts: f.admin, allocated: eth(5), owner: f.owner.From},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := f.ledger.CreateProject(ctx, tt.opts, common.HexToHash("0x02"), tt.allocated, tt.owner)
			if tt.reason != "" {
				assertRevert(t, err, tt.reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(1), *receipt.ProjectID)
			assert.NotEqual(t, common.Hash{}, receipt.TxHash)
		})
	}

	count, err := f.ledger.GetProjectCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestOfficialCanCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddGovernmentOfficial(ctx, f.stranger, f.owner.From)
	assertRevert(t, err, reasonNotAdmin)

	_, err = f.ledger.AddGovernmentOfficial(ctx, f.admin, f.owner.From)
	require.NoError(t, err)

	_, err = f.ledger.CreateProject(ctx, f.owner, common.HexToHash("0x03"), eth(1), f.owner.From)
	assert.NoError(t, err)
}

func TestSpendFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.SpendFunds(ctx, f.stranger, 0, eth(1), "materials", common.Hash{})
	assertRevert(t, err, reasonNotSpender)

	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, eth(51), "materials", common.Hash{})
	assertRevert(t, err, reasonInsufficient)

	receipt, err := f.ledger.SpendFunds(ctx, f.owner, 0, eth(10), "materials", common.HexToHash("0xaa"))
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)

	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, eth(41), "labor", common.Hash{})
	assertRevert(t, err, reasonInsufficient)

	_, err = f.ledger.SpendFunds(ctx, f.owner, 7, eth(1), "labor", common.Hash{})
	assertRevert(t, err, reasonNoProject)

	project, err := f.ledger.GetProject(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, eth(10), project.SpentAmount)
	assert.Equal(t, eth(40), project.Remaining())

	records, err := f.ledger.SpendingRecords(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, f.owner.From, records[0].SpentBy)
	assert.Equal(t, common.HexToHash("0xaa"), records[0].DescriptionHash)
}

func TestAmountAboveUint256(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	wrapped := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	_, err := f.ledger.CreateProject(ctx, f.admin, common.HexToHash("0x04"), wrapped, f.owner.From)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, wrapped, "materials", common.Hash{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	project, err := f.ledger.GetProject(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, project.SpentAmount.Sign())
	count, err := f.ledger.GetProjectCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestApproverCanSpend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.AddApprover(ctx, f.stranger, 0, f.stranger.From)
	assertRevert(t, err, reasonNotOwner)

	_, err = f.ledger.AddApprover(ctx, f.owner, 0, f.stranger.From)
	require.NoError(t, err)
	_, err = f.ledger.AddApprover(ctx, f.admin, 0, f.stranger.From)
	assertRevert(t, err, reasonDuplicateEntry)

	_, err = f.ledger.SpendFunds(ctx, f.stranger, 0, eth(2), "travel", common.Hash{})
	assert.NoError(t, err)
}

func TestSetProjectStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.SetProjectStatus(ctx, f.stranger, 0, domain.StatusPaused)
	assertRevert(t, err, reasonNotOwner)

	_, err = f.ledger.SetProjectStatus(ctx, f.owner, 0, domain.StatusPaused)
	require.NoError(t, err)

	project, err := f.ledger.GetProject(ctx, 0)
	require.NoError(t, err)
	assert.False(t, project.IsActive)
	assert.Equal(t, domain.StatusPaused, project.Status)

	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, eth(1), "materials", common.Hash{})
	assertRevert(t, err, reasonInactive)

	_, err = f.ledger.SetProjectStatus(ctx, f.admin, 0, domain.StatusActive)
	require.NoError(t, err)
	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, eth(1), "materials", common.Hash{})
	assert.NoError(t, err)
}

func TestUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.ledger.SetAvailable(false)

	_, err := f.ledger.ListProjects(ctx)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	_, err = f.ledger.SpendFunds(ctx, f.owner, 0, eth(1), "materials", common.Hash{})
	assert.ErrorIs(t, err, domain.ErrProviderFailure)

	f.ledger.SetAvailable(true)
	projects, err := f.ledger.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestRejectedSignature(t *testing.T) {
	f := newFixture(t)
	opts := *f.owner
	opts.Signer = func(common.Address, *types.Transaction) (*types.Transaction, error) {
		return nil, domain.ErrUserRejected
	}

	_, err := f.ledger.SpendFunds(context.Background(), &opts, 0, eth(1), "materials", common.Hash{})
	assert.ErrorIs(t, err, domain.ErrUserRejected)

	project, err := f.ledger.GetProject(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, project.SpentAmount.Sign())
}

func TestNoSigner(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.AddAdmin(context.Background(), nil, f.owner.From)
	assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
}

func TestReturnedProjectsAreCopies(t *testing.T) {
	f := newFixture(t)
	project, err := f.ledger.GetProject(context.Background(), 0)
	require.NoError(t, err)
	project.SpentAmount.SetInt64(999)

	again, err := f.ledger.GetProject(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, again.SpentAmount.Sign())
}
