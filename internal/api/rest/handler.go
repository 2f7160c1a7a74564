package rest

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/bulbafloor/auction-engine/internal/admin"
	"github.com/bulbafloor/auction-engine/internal/api/middleware"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/engine"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateAuction opens a new listing for the authenticated seller
	// POST /api/v1/auctions
	CreateAuction(c *gin.Context)

	// GetAuction returns an open auction
	// GET /api/v1/auctions/:id
	GetAuction(c *gin.Context)

	// GetAuctionPrice quotes the live decayed price of an open auction
	// GET /api/v1/auctions/:id/price
	GetAuctionPrice(c *gin.Context)

	// BuyAuction settles an auction at its current price for the
	// authenticated buyer
	// POST /api/v1/auctions/:id/buy
	BuyAuction(c *gin.Context)

	// CancelAuction withdraws a listing; seller only
	// POST /api/v1/auctions/:id/cancel
	CancelAuction(c *gin.Context)

	// GetGlobalConfig returns the marketplace configuration
	// GET /api/v1/admin/config
	GetGlobalConfig(c *gin.Context)

	// SetFeeBasisPoints updates the marketplace fee; owner only
	// PUT /api/v1/admin/fee-basis-points
	SetFeeBasisPoints(c *gin.Context)

	// SetFeeRecipient updates the fee recipient; owner only
	// PUT /api/v1/admin/fee-recipient
	SetFeeRecipient(c *gin.Context)

	// RecoverNativeTokens sweeps stuck native currency to the fee
	// recipient; open to any caller
	// POST /api/v1/admin/recover/native
	RecoverNativeTokens(c *gin.Context)

	// RecoverERC20Tokens sweeps stuck ERC20 balances; owner only
	// POST /api/v1/admin/recover/erc20
	RecoverERC20Tokens(c *gin.Context)

	// RecoverERC721Tokens sweeps stuck ERC721 tokens; owner only
	// POST /api/v1/admin/recover/erc721
	RecoverERC721Tokens(c *gin.Context)

	// RecoverERC1155Tokens sweeps stuck ERC1155 tokens; owner only
	// POST /api/v1/admin/recover/erc1155
	RecoverERC1155Tokens(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine engine.Engine
	admin  admin.Controller
}

// NewHandler creates a new REST API handler
func NewHandler(e engine.Engine, a admin.Controller) Handler {
	return &handler{engine: e, admin: a}
}

// CreateAuctionRequest is the creation payload. uint256 values are decimal
// strings.
type CreateAuctionRequest struct {
	TokenContract      string `json:"token_contract" binding:"required"`
	TokenID            string `json:"token_id" binding:"required"`
	TokenType          string `json:"token_type" binding:"required"`
	Amount             string `json:"amount"`
	SaleToken          string `json:"sale_token" binding:"required"`
	StartPrice         string `json:"start_price" binding:"required"`
	ReservePrice       string `json:"reserve_price" binding:"required"`
	RoyaltyRecipient   string `json:"royalty_recipient"`
	RoyaltyBasisPoints uint64 `json:"royalty_basis_points"`
	Duration           uint64 `json:"duration" binding:"required"`
}

// SetFeeBasisPointsRequest is the fee update payload
type SetFeeBasisPointsRequest struct {
	FeeBasisPoints uint64 `json:"fee_basis_points"`
}

// SetFeeRecipientRequest is the recipient update payload
type SetFeeRecipientRequest struct {
	FeeRecipient string `json:"fee_recipient" binding:"required"`
}

// RecoverERC20Request lists the token contracts to sweep
type RecoverERC20Request struct {
	Tokens []string `json:"tokens" binding:"required"`
}

// RecoverERC721Request lists the tokens to sweep; contracts and token_ids
// are parallel arrays
type RecoverERC721Request struct {
	Contracts []string `json:"contracts" binding:"required"`
	TokenIDs  []string `json:"token_ids" binding:"required"`
}

// RecoverERC1155Request lists the token amounts to sweep; contracts,
// token_ids and amounts are parallel arrays
type RecoverERC1155Request struct {
	Contracts []string `json:"contracts" binding:"required"`
	TokenIDs  []string `json:"token_ids" binding:"required"`
	Amounts   []string `json:"amounts" binding:"required"`
}

// QuoteResponse is the wire form of a price quote
type QuoteResponse struct {
	AuctionID uint64    `json:"auction_id"`
	SaleToken string    `json:"sale_token"`
	Price     string    `json:"price"`
	At        time.Time `json:"at"`
}

// SaleResponse is the wire form of a settled sale
type SaleResponse struct {
	AuctionID uint64 `json:"auction_id"`
	Seller    string `json:"seller"`
	Buyer     string `json:"buyer"`
	SaleToken string `json:"sale_token"`
	Price     string `json:"price"`
	Fee       string `json:"fee"`
	Royalty   string `json:"royalty"`
	Proceeds  string `json:"proceeds"`
}

// CancellationResponse is the wire form of a cancelled listing
type CancellationResponse struct {
	AuctionID     uint64 `json:"auction_id"`
	Seller        string `json:"seller"`
	TokenContract string `json:"token_contract"`
	TokenID       string `json:"token_id"`
	Amount        string `json:"amount"`
}

// GlobalConfigResponse is the wire form of the marketplace configuration
type GlobalConfigResponse struct {
	Owner          string `json:"owner"`
	FeeBasisPoints uint64 `json:"fee_basis_points"`
	FeeRecipient   string `json:"fee_recipient"`
}

func (h *handler) CreateAuction(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tokenContract, err := parseAddress(req.TokenContract, "token_contract")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	saleToken, err := parseAddress(req.SaleToken, "sale_token")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	tokenID, err := parseBigInt(req.TokenID, "token_id")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	startPrice, err := parseBigInt(req.StartPrice, "start_price")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	reservePrice, err := parseBigInt(req.ReservePrice, "reserve_price")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	var amount *big.Int
	if req.Amount != "" {
		if amount, err = parseBigInt(req.Amount, "amount"); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}

	var royaltyRecipient common.Address
	if req.RoyaltyRecipient != "" {
		if royaltyRecipient, err = parseAddress(req.RoyaltyRecipient, "royalty_recipient"); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}

	a, err := h.engine.CreateAuction(c.Request.Context(), &engine.CreateAuctionRequest{
		Seller: caller,
		Asset: domain.AssetReference{
			TokenContract: tokenContract,
			TokenID:       tokenID,
			TokenType:     domain.TokenType(req.TokenType),
		},
		Amount:             amount,
		SaleToken:          saleToken,
		StartPrice:         startPrice,
		ReservePrice:       reservePrice,
		RoyaltyRecipient:   royaltyRecipient,
		RoyaltyBasisPoints: req.RoyaltyBasisPoints,
		Duration:           req.Duration,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a.Snapshot())
}

func (h *handler) GetAuction(c *gin.Context) {
	id, err := parseAuctionID(c)
	if err != nil {
		respondBadRequest(c, "Invalid auction id", err.Error())
		return
	}

	a, err := h.engine.GetAuction(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, a.Snapshot())
}

func (h *handler) GetAuctionPrice(c *gin.Context) {
	id, err := parseAuctionID(c)
	if err != nil {
		respondBadRequest(c, "Invalid auction id", err.Error())
		return
	}

	quote, err := h.engine.CurrentPrice(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &QuoteResponse{
		AuctionID: quote.AuctionID,
		SaleToken: quote.SaleToken.Hex(),
		Price:     quote.Price.String(),
		At:        quote.At,
	})
}

func (h *handler) BuyAuction(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	id, err := parseAuctionID(c)
	if err != nil {
		respondBadRequest(c, "Invalid auction id", err.Error())
		return
	}

	sale, err := h.engine.Buy(c.Request.Context(), id, caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &SaleResponse{
		AuctionID: sale.AuctionID,
		Seller:    sale.Seller.Hex(),
		Buyer:     sale.Buyer.Hex(),
		SaleToken: sale.SaleToken.Hex(),
		Price:     sale.Price.String(),
		Fee:       sale.Fee.String(),
		Royalty:   sale.Royalty.String(),
		Proceeds:  sale.Proceeds.String(),
	})
}

func (h *handler) CancelAuction(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	id, err := parseAuctionID(c)
	if err != nil {
		respondBadRequest(c, "Invalid auction id", err.Error())
		return
	}

	cancellation, err := h.engine.CancelAuction(c.Request.Context(), id, caller)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &CancellationResponse{
		AuctionID:     cancellation.AuctionID,
		Seller:        cancellation.Seller.Hex(),
		TokenContract: cancellation.Asset.TokenContract.Hex(),
		TokenID:       cancellation.Asset.TokenID.String(),
		Amount:        cancellation.Amount.String(),
	})
}

func (h *handler) GetGlobalConfig(c *gin.Context) {
	cfg, err := h.admin.GetGlobalConfig(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &GlobalConfigResponse{
		Owner:          cfg.Owner.Hex(),
		FeeBasisPoints: cfg.FeeBasisPoints,
		FeeRecipient:   cfg.FeeRecipient.Hex(),
	})
}

func (h *handler) SetFeeBasisPoints(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req SetFeeBasisPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.admin.SetFeeBasisPoints(c.Request.Context(), caller, req.FeeBasisPoints); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) SetFeeRecipient(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req SetFeeRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	recipient, err := parseAddress(req.FeeRecipient, "fee_recipient")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.admin.SetFeeRecipient(c.Request.Context(), caller, recipient); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RecoverNativeTokens(c *gin.Context) {
	if err := h.admin.RecoverNativeTokens(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RecoverERC20Tokens(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req RecoverERC20Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tokens, err := parseAddresses(req.Tokens, "tokens")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.admin.RecoverERC20Tokens(c.Request.Context(), caller, tokens); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RecoverERC721Tokens(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req RecoverERC721Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	contracts, err := parseAddresses(req.Contracts, "contracts")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	ids, err := parseBigInts(req.TokenIDs, "token_ids")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.admin.RecoverERC721Tokens(c.Request.Context(), caller, contracts, ids); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RecoverERC1155Tokens(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authenticated caller", "")
		return
	}

	var req RecoverERC1155Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	contracts, err := parseAddresses(req.Contracts, "contracts")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	ids, err := parseBigInts(req.TokenIDs, "token_ids")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	amounts, err := parseBigInts(req.Amounts, "amounts")
	if err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.admin.RecoverERC1155Tokens(c.Request.Context(), caller, contracts, ids, amounts); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func parseAuctionID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func parseAddress(s, field string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%s: %q is not a valid address", field, s)
	}

	return common.HexToAddress(s), nil
}

func parseAddresses(values []string, field string) ([]common.Address, error) {
	addrs := make([]common.Address, 0, len(values))
	for _, v := range values {
		addr, err := parseAddress(v, field)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

func parseBigInt(s, field string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%s: %q is not a valid non-negative integer", field, s)
	}

	return v, nil
}

func parseBigInts(values []string, field string) ([]*big.Int, error) {
	ints := make([]*big.Int, 0, len(values))
	for _, v := range values {
		i, err := parseBigInt(v, field)
		if err != nil {
			return nil, err
		}
		ints = append(ints, i)
	}

	return ints, nil
}
