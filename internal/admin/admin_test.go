package admin

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/mocks"
)

var (
	custodian    = common.HexToAddress("0xC000000000000000000000000000000000000001")
	owner        = common.HexToAddress("0xA000000000000000000000000000000000000003")
	feeRecipient = common.HexToAddress("0xA000000000000000000000000000000000000004")
	stranger     = common.HexToAddress("0xA000000000000000000000000000000000000009")
	erc20Token   = common.HexToAddress("0xB000000000000000000000000000000000000003")
	nftContract  = common.HexToAddress("0xB000000000000000000000000000000000000002")
)

type testAdminMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	transferor *mocks.MockTransferor
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func setupTestAdmin(t *testing.T) (Controller, *testAdminMocks) {
	ctrl := gomock.NewController(t)

	m := &testAdminMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		transferor: mocks.NewMockTransferor(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	m.transferor.EXPECT().Custodian().Return(custodian).AnyTimes()
	m.clock.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	return New(m.store, m.transferor, m.publisher, m.clock), m
}

func testConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		Owner:          owner,
		FeeBasisPoints: 100,
		FeeRecipient:   feeRecipient,
	}
}

func TestSetFeeBasisPoints(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.store.EXPECT().SetFeeBasisPoints(gomock.Any(), uint64(250)).Return(nil)

	var published *domain.AuctionEvent
	m.publisher.EXPECT().PublishAuctionEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.AuctionEvent) error {
			published = event
			return nil
		})

	require.NoError(t, c.SetFeeBasisPoints(context.Background(), owner, 250))

	require.NotNil(t, published)
	assert.Equal(t, domain.EventFeeBasisPointsSet, published.Kind)
	require.NotNil(t, published.FeeBasisPoints)
	assert.Equal(t, uint64(250), *published.FeeBasisPoints)
}

func TestSetFeeBasisPointsRejectsNonOwner(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)

	err := c.SetFeeBasisPoints(context.Background(), stranger, 250)
	var unauthorized *domain.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "owner", unauthorized.Required)
}

func TestSetFeeRecipient(t *testing.T) {
	c, m := setupTestAdmin(t)
	next := common.HexToAddress("0xA00000000000000000000000000000000000000A")

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.store.EXPECT().SetFeeRecipient(gomock.Any(), next).Return(nil)

	var published *domain.AuctionEvent
	m.publisher.EXPECT().PublishAuctionEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.AuctionEvent) error {
			published = event
			return nil
		})

	require.NoError(t, c.SetFeeRecipient(context.Background(), owner, next))

	require.NotNil(t, published)
	assert.Equal(t, domain.EventFeeRecipientSet, published.Kind)
	assert.Equal(t, next.Hex(), published.FeeRecipient)
}

func TestSetFeeRecipientAllowsCurrentRecipient(t *testing.T) {
	c, m := setupTestAdmin(t)
	next := common.HexToAddress("0xA00000000000000000000000000000000000000A")

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.store.EXPECT().SetFeeRecipient(gomock.Any(), next).Return(nil)
	m.publisher.EXPECT().PublishAuctionEvent(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, c.SetFeeRecipient(context.Background(), feeRecipient, next))
}

func TestSetFeeRecipientRejectsStranger(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)

	err := c.SetFeeRecipient(context.Background(), stranger, owner)
	var unauthorized *domain.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "owner or fee recipient", unauthorized.Required)
}

func TestSetFeeRecipientUnchanged(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.store.EXPECT().SetFeeRecipient(gomock.Any(), feeRecipient).
		Return(&domain.RecipientUnchangedError{Recipient: feeRecipient})

	err := c.SetFeeRecipient(context.Background(), owner, feeRecipient)
	var unchanged *domain.RecipientUnchangedError
	require.ErrorAs(t, err, &unchanged)
}

func TestRecoverNativeTokensIsOpenToAnyone(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.transferor.EXPECT().NativeBalance(gomock.Any(), custodian).Return(big.NewInt(777), nil)
	m.transferor.EXPECT().NativeTransfer(gomock.Any(), feeRecipient, big.NewInt(777)).Return(nil)

	require.NoError(t, c.RecoverNativeTokens(context.Background()))
}

func TestRecoverNativeTokensSkipsEmptyBalance(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.transferor.EXPECT().NativeBalance(gomock.Any(), custodian).Return(big.NewInt(0), nil)

	require.NoError(t, c.RecoverNativeTokens(context.Background()))
}

func TestRecoverERC20Tokens(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.transferor.EXPECT().ERC20BalanceOf(gomock.Any(), erc20Token, custodian).Return(big.NewInt(1000000), nil)
	m.transferor.EXPECT().ERC20Transfer(gomock.Any(), erc20Token, feeRecipient, big.NewInt(1000000)).Return(nil)

	require.NoError(t, c.RecoverERC20Tokens(context.Background(), owner, []common.Address{erc20Token}))
}

func TestRecoverERC20TokensRejectsNonOwner(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)

	err := c.RecoverERC20Tokens(context.Background(), stranger, []common.Address{erc20Token})
	var unauthorized *domain.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
}

func TestRecoverERC721Tokens(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.transferor.EXPECT().ERC721TransferFrom(gomock.Any(), nftContract, custodian, feeRecipient, big.NewInt(2)).Return(nil)

	require.NoError(t, c.RecoverERC721Tokens(context.Background(), owner,
		[]common.Address{nftContract}, []*big.Int{big.NewInt(2)}))
}

func TestRecoverERC721TokensLengthMismatch(t *testing.T) {
	c, _ := setupTestAdmin(t)

	err := c.RecoverERC721Tokens(context.Background(), owner,
		[]common.Address{nftContract}, []*big.Int{big.NewInt(0), big.NewInt(1)})
	var mismatch *domain.ArgumentLengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []int{1, 2}, mismatch.Lengths)
}

func TestRecoverERC1155Tokens(t *testing.T) {
	c, m := setupTestAdmin(t)

	m.store.EXPECT().GetGlobalConfig(gomock.Any()).Return(testConfig(), nil)
	m.transferor.EXPECT().ERC1155TransferFrom(gomock.Any(), nftContract, custodian, feeRecipient, big.NewInt(0), big.NewInt(1)).Return(nil)

	require.NoError(t, c.RecoverERC1155Tokens(context.Background(), owner,
		[]common.Address{nftContract}, []*big.Int{big.NewInt(0)}, []*big.Int{big.NewInt(1)}))
}

func TestRecoverERC1155TokensLengthMismatch(t *testing.T) {
	c, _ := setupTestAdmin(t)

	err := c.RecoverERC1155Tokens(context.Background(), owner,
		[]common.Address{nftContract}, []*big.Int{big.NewInt(0)}, []*big.Int{big.NewInt(1), big.NewInt(2)})
	var mismatch *domain.ArgumentLengthMismatchError
	require.ErrorAs(t, err, &mismatch)

	err = c.RecoverERC1155Tokens(context.Background(), owner,
		[]common.Address{nftContract}, []*big.Int{big.NewInt(0), big.NewInt(1)}, []*big.Int{big.NewInt(1)})
	require.ErrorAs(t, err, &mismatch)
}
