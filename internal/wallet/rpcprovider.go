package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

// EIP-1193 provider error codes.
const (
	codeUserRejected = 4001
	codeUnknownChain = 4902
)

// RPCProvider forwards wallet requests to an external wallet over JSON-RPC.
type RPCProvider struct {
	client *rpc.Client
}

func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{client: client}
}

func DialRPCProvider(ctx context.Context, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial wallet %s: %v", domain.ErrProviderFailure, url, err)
	}
	return NewRPCProvider(client), nil
}

func (p *RPCProvider) Close() {
	p.client.Close()
}

func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.call(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.call(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) ChainID(ctx context.Context) (*big.Int, error) {
	var id hexutil.Big
	if err := p.call(ctx, &id, "eth_chainId"); err != nil {
		return nil, err
	}
	return (*big.Int)(&id), nil
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

func (p *RPCProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	return p.call(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: hexutil.EncodeBig(chainID)})
}

type addChainParams struct {
	ChainID string `json:"chainId"`
	ChainParams
}

func (p *RPCProvider) AddChain(ctx context.Context, params ChainParams) error {
	req := addChainParams{
		ChainID:     hexutil.EncodeUint64(params.ChainID),
		ChainParams: params,
	}
	return p.call(ctx, nil, "wallet_addEthereumChain", req)
}

type sendTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Nonce                hexutil.Uint64  `json:"nonce"`
	Input                hexutil.Bytes   `json:"input"`
	ChainID              *hexutil.Big    `json:"chainId"`
}

type signTxResult struct {
	Raw hexutil.Bytes `json:"raw"`
}

// SignTx asks the wallet to sign without broadcasting; the ledger client
// sends the signed transaction itself.
func (p *RPCProvider) SignTx(ctx context.Context, from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	args := sendTxArgs{
		From:    from,
		To:      tx.To(),
		Gas:     hexutil.Uint64(tx.Gas()),
		Value:   (*hexutil.Big)(tx.Value()),
		Nonce:   hexutil.Uint64(tx.Nonce()),
		Input:   tx.Data(),
		ChainID: (*hexutil.Big)(chainID),
	}
	if tx.Type() == types.DynamicFeeTxType {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	}

	var res signTxResult
	if err := p.call(ctx, &res, "eth_signTransaction", args); err != nil {
		return nil, err
	}
	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(res.Raw); err != nil {
		return nil, fmt.Errorf("%w: decode signed transaction: %v", domain.ErrProviderFailure, err)
	}
	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	if err != nil {
		return nil, fmt.Errorf("%w: recover signer: %v", domain.ErrProviderFailure, err)
	}
	if sender != from {
		return nil, fmt.Errorf("%w: wallet signed as %s, expected %s", domain.ErrProviderFailure, sender.Hex(), from.Hex())
	}
	return signed, nil
}

func (p *RPCProvider) call(ctx context.Context, result any, method string, args ...any) error {
	return mapRPCError(p.client.CallContext(ctx, result, method, args...))
}

func mapRPCError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case codeUserRejected:
			return fmt.Errorf("%w: %s", domain.ErrUserRejected, rpcErr.Error())
		case codeUnknownChain:
			return fmt.Errorf("%w: %s", ErrUnknownChain, rpcErr.Error())
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
}
