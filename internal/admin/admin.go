package admin

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/adapter"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/logger"
	"github.com/bulbafloor/auction-engine/internal/messaging"
	"github.com/bulbafloor/auction-engine/internal/providers/ethereum"
	"github.com/bulbafloor/auction-engine/internal/store"
)

// Controller exposes the owner-gated marketplace administration operations
// and the stuck-asset recovery sweeps.
//
//go:generate mockgen -source=admin.go -destination=../mocks/admin.go -package=mocks -mock_names=Controller=MockController
type Controller interface {
	// GetGlobalConfig returns the current marketplace configuration.
	GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error)

	// SetFeeBasisPoints updates the fee charged on future auctions.
	// Owner only.
	SetFeeBasisPoints(ctx context.Context, caller common.Address, feeBasisPoints uint64) error

	// SetFeeRecipient updates the fee recipient. Callable by the owner or
	// the current fee recipient.
	SetFeeRecipient(ctx context.Context, caller, recipient common.Address) error

	// RecoverNativeTokens sweeps the custodian's full native balance to the
	// fee recipient. Deliberately open to any caller: it can only move
	// otherwise-stuck value to the fee recipient.
	RecoverNativeTokens(ctx context.Context) error

	// RecoverERC20Tokens sweeps the custodian's full balance of each given
	// token to the fee recipient. Owner only.
	RecoverERC20Tokens(ctx context.Context, caller common.Address, tokens []common.Address) error

	// RecoverERC721Tokens sweeps the given tokens to the fee recipient.
	// contracts and ids are parallel arrays. Owner only.
	RecoverERC721Tokens(ctx context.Context, caller common.Address, contracts []common.Address, ids []*big.Int) error

	// RecoverERC1155Tokens sweeps the given token amounts to the fee
	// recipient. contracts, ids and amounts are parallel arrays. Owner only.
	RecoverERC1155Tokens(ctx context.Context, caller common.Address, contracts []common.Address, ids, amounts []*big.Int) error
}

type controller struct {
	store      store.Store
	transferor ethereum.Transferor
	publisher  messaging.Publisher
	clock      adapter.Clock
}

// New creates an admin controller.
func New(s store.Store, t ethereum.Transferor, p messaging.Publisher, clock adapter.Clock) Controller {
	return &controller{
		store:      s,
		transferor: t,
		publisher:  p,
		clock:      clock,
	}
}

func (c *controller) GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	return c.store.GetGlobalConfig(ctx)
}

func (c *controller) SetFeeBasisPoints(ctx context.Context, caller common.Address, feeBasisPoints uint64) error {
	if err := c.requireOwner(ctx, caller); err != nil {
		return err
	}

	if err := c.store.SetFeeBasisPoints(ctx, feeBasisPoints); err != nil {
		return err
	}

	c.publish(ctx, domain.NewFeeBasisPointsSetEvent(c.clock.Now().UTC(), feeBasisPoints))

	return nil
}

func (c *controller) SetFeeRecipient(ctx context.Context, caller, recipient common.Address) error {
	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Owner && caller != cfg.FeeRecipient {
		return &domain.UnauthorizedError{Caller: caller, Required: "owner or fee recipient"}
	}

	if err := c.store.SetFeeRecipient(ctx, recipient); err != nil {
		return err
	}

	c.publish(ctx, domain.NewFeeRecipientSetEvent(c.clock.Now().UTC(), recipient.Hex()))

	return nil
}

func (c *controller) RecoverNativeTokens(ctx context.Context) error {
	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}

	balance, err := c.transferor.NativeBalance(ctx, c.transferor.Custodian())
	if err != nil {
		return err
	}
	if balance.Sign() == 0 {
		return nil
	}

	return c.transferor.NativeTransfer(ctx, cfg.FeeRecipient, balance)
}

func (c *controller) RecoverERC20Tokens(ctx context.Context, caller common.Address, tokens []common.Address) error {
	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return &domain.UnauthorizedError{Caller: caller, Required: "owner"}
	}

	for _, token := range tokens {
		balance, err := c.transferor.ERC20BalanceOf(ctx, token, c.transferor.Custodian())
		if err != nil {
			return err
		}
		if balance.Sign() == 0 {
			continue
		}

		if err := c.transferor.ERC20Transfer(ctx, token, cfg.FeeRecipient, balance); err != nil {
			return err
		}
	}

	return nil
}

func (c *controller) RecoverERC721Tokens(ctx context.Context, caller common.Address, contracts []common.Address, ids []*big.Int) error {
	if len(contracts) != len(ids) {
		return &domain.ArgumentLengthMismatchError{Lengths: []int{len(contracts), len(ids)}}
	}

	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return &domain.UnauthorizedError{Caller: caller, Required: "owner"}
	}

	custodian := c.transferor.Custodian()
	for i, contract := range contracts {
		if err := c.transferor.ERC721TransferFrom(ctx, contract, custodian, cfg.FeeRecipient, ids[i]); err != nil {
			return err
		}
	}

	return nil
}

func (c *controller) RecoverERC1155Tokens(ctx context.Context, caller common.Address, contracts []common.Address, ids, amounts []*big.Int) error {
	if len(contracts) != len(ids) || len(contracts) != len(amounts) {
		return &domain.ArgumentLengthMismatchError{Lengths: []int{len(contracts), len(ids), len(amounts)}}
	}

	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return &domain.UnauthorizedError{Caller: caller, Required: "owner"}
	}

	custodian := c.transferor.Custodian()
	for i, contract := range contracts {
		if err := c.transferor.ERC1155TransferFrom(ctx, contract, custodian, cfg.FeeRecipient, ids[i], amounts[i]); err != nil {
			return err
		}
	}

	return nil
}

func (c *controller) requireOwner(ctx context.Context, caller common.Address) error {
	cfg, err := c.store.GetGlobalConfig(ctx)
	if err != nil {
		return err
	}
	if caller != cfg.Owner {
		return &domain.UnauthorizedError{Caller: caller, Required: "owner"}
	}

	return nil
}

func (c *controller) publish(ctx context.Context, event *domain.AuctionEvent) {
	if err := c.publisher.PublishAuctionEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish admin event"),
			zap.String("event_id", event.EventID),
			zap.String("kind", string(event.Kind)))
	}
}
