package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/adapter"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/logger"
)

const (
	erc20ABIJSON = `[
		{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
		{"constant":false,"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transferFrom","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
		{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
	]`
	erc721ABIJSON = `[
		{"constant":false,"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"safeTransferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`
	erc1155ABIJSON = `[
		{"constant":false,"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"data","type":"bytes"}],"name":"safeTransferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`
)

// nativeTransferGasLimit is the fixed gas cost of a plain value transfer.
const nativeTransferGasLimit = 21000

// Transferor executes token transfers from the custodial settlement wallet.
// All write methods block until the transaction is mined and fail when it
// reverts.
//
//go:generate mockgen -source=transferor.go -destination=../../mocks/transferor.go -package=mocks -mock_names=Transferor=MockTransferor
type Transferor interface {
	// Custodian returns the settlement wallet address holding escrowed
	// assets and routing payments.
	Custodian() common.Address

	// ERC20Transfer sends amount of token from the custodian to `to`.
	ERC20Transfer(ctx context.Context, token, to common.Address, amount *big.Int) error

	// ERC20TransferFrom pulls amount of token from `from` to `to` using the
	// custodian's allowance.
	ERC20TransferFrom(ctx context.Context, token, from, to common.Address, amount *big.Int) error

	// ERC721TransferFrom moves an ERC721 token between `from` and `to`.
	ERC721TransferFrom(ctx context.Context, token, from, to common.Address, tokenID *big.Int) error

	// ERC1155TransferFrom moves amount units of an ERC1155 token id between
	// `from` and `to`.
	ERC1155TransferFrom(ctx context.Context, token, from, to common.Address, tokenID, amount *big.Int) error

	// ERC20BalanceOf returns the token balance of owner.
	ERC20BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)

	// NativeBalance returns the native currency balance of account.
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)

	// NativeTransfer sends amount of native currency from the custodian.
	NativeTransfer(ctx context.Context, to common.Address, amount *big.Int) error

	// Close closes the underlying RPC connection.
	Close()
}

type transferor struct {
	client     adapter.EthClient
	key        *ecdsa.PrivateKey
	custodian  common.Address
	chainID    *big.Int
	receiptTTL time.Duration

	erc20ABI   abi.ABI
	erc721ABI  abi.ABI
	erc1155ABI abi.ABI
}

// NewTransferor builds a transferor signing with the given hex-encoded
// private key. receiptTTL bounds how long a transfer waits to be mined.
func NewTransferor(ctx context.Context, client adapter.EthClient, privateKeyHex string, receiptTTL time.Duration) (Transferor, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse custodian key: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	erc20ABI, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}

	erc721ABI, err := abi.JSON(strings.NewReader(erc721ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC721 ABI: %w", err)
	}

	erc1155ABI, err := abi.JSON(strings.NewReader(erc1155ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC1155 ABI: %w", err)
	}

	return &transferor{
		client:     client,
		key:        key,
		custodian:  crypto.PubkeyToAddress(key.PublicKey),
		chainID:    chainID,
		receiptTTL: receiptTTL,
		erc20ABI:   erc20ABI,
		erc721ABI:  erc721ABI,
		erc1155ABI: erc1155ABI,
	}, nil
}

func (t *transferor) Custodian() common.Address {
	return t.custodian
}

func (t *transferor) ERC20Transfer(ctx context.Context, token, to common.Address, amount *big.Int) error {
	data, err := t.erc20ABI.Pack("transfer", to, amount)
	if err != nil {
		return &domain.TransferFailedError{Op: "erc20", Err: err}
	}

	if err := t.sendAndWait(ctx, token, nil, data); err != nil {
		return &domain.TransferFailedError{Op: "erc20", Err: err}
	}

	return nil
}

func (t *transferor) ERC20TransferFrom(ctx context.Context, token, from, to common.Address, amount *big.Int) error {
	data, err := t.erc20ABI.Pack("transferFrom", from, to, amount)
	if err != nil {
		return &domain.TransferFailedError{Op: "erc20", Err: err}
	}

	if err := t.sendAndWait(ctx, token, nil, data); err != nil {
		return &domain.TransferFailedError{Op: "erc20", Err: err}
	}

	return nil
}

func (t *transferor) ERC721TransferFrom(ctx context.Context, token, from, to common.Address, tokenID *big.Int) error {
	data, err := t.erc721ABI.Pack("safeTransferFrom", from, to, tokenID)
	if err != nil {
		return &domain.TransferFailedError{Op: "erc721", Err: err}
	}

	if err := t.sendAndWait(ctx, token, nil, data); err != nil {
		return &domain.TransferFailedError{Op: "erc721", Err: err}
	}

	return nil
}

func (t *transferor) ERC1155TransferFrom(ctx context.Context, token, from, to common.Address, tokenID, amount *big.Int) error {
	data, err := t.erc1155ABI.Pack("safeTransferFrom", from, to, tokenID, amount, []byte{})
	if err != nil {
		return &domain.TransferFailedError{Op: "erc1155", Err: err}
	}

	if err := t.sendAndWait(ctx, token, nil, data); err != nil {
		return &domain.TransferFailedError{Op: "erc1155", Err: err}
	}

	return nil
}

func (t *transferor) ERC20BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	data, err := t.erc20ABI.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := t.client.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var balance *big.Int
	if err := t.erc20ABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return balance, nil
}

func (t *transferor) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	return t.client.BalanceAt(ctx, account, nil)
}

func (t *transferor) NativeTransfer(ctx context.Context, to common.Address, amount *big.Int) error {
	if err := t.sendAndWait(ctx, to, amount, nil); err != nil {
		return &domain.TransferFailedError{Op: "native", Err: err}
	}

	return nil
}

// sendAndWait signs and broadcasts a transaction from the custodian wallet,
// then blocks until it is mined. A reverted transaction is an error.
func (t *transferor) sendAndWait(ctx context.Context, to common.Address, value *big.Int, data []byte) error {
	nonce, err := t.client.PendingNonceAt(ctx, t.custodian)
	if err != nil {
		return fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch gas price: %w", err)
	}

	gasLimit := uint64(nativeTransferGasLimit)
	if len(data) > 0 {
		gasLimit, err = t.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  t.custodian,
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Debug("Sent settlement transaction",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", to.Hex()))

	receipt, err := t.waitReceipt(ctx, signed.Hash())
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", signed.Hash().Hex())
	}

	return nil
}

// waitReceipt polls for the transaction receipt with exponential backoff
// until the receipt TTL elapses.
func (t *transferor) waitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = t.receiptTTL

	var receipt *types.Receipt
	err := backoff.Retry(func() error {
		var err error
		receipt, err = t.client.TransactionReceipt(ctx, txHash)
		if errors.Is(err, ethereum.NotFound) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt for %s: %w", txHash.Hex(), err)
	}

	return receipt, nil
}

// Close closes the connection
func (t *transferor) Close() {
	t.client.Close()
}
