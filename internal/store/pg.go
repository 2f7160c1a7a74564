package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bulbafloor/auction-engine/internal/adapter"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a Postgres-backed store.
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// AutoMigrate creates or updates the ledger tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&schema.Auction{}, &schema.GlobalConfig{})
}

// ConfigureConnectionPool applies connection pool settings to the
// underlying sql.DB. Zero values keep the driver defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(maxIdleConns)
	}
	if connMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}

	return nil
}

func (s *pgStore) SeedGlobalConfig(ctx context.Context, cfg *domain.GlobalConfig) error {
	row := schema.GlobalConfig{
		ID:             schema.GlobalConfigRowID,
		Owner:          cfg.Owner.Hex(),
		FeeBasisPoints: cfg.FeeBasisPoints,
		FeeRecipient:   cfg.FeeRecipient.Hex(),
		NextAuctionID:  0,
		UpdatedAt:      s.clock.Now().UTC(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (s *pgStore) GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	var row schema.GlobalConfig
	if err := s.db.WithContext(ctx).
		First(&row, "id = ?", schema.GlobalConfigRowID).Error; err != nil {
		return nil, err
	}

	return toDomainConfig(&row), nil
}

func (s *pgStore) SetFeeBasisPoints(ctx context.Context, feeBasisPoints uint64) error {
	if feeBasisPoints > domain.Denominator {
		return &domain.FeeExceedsDenominatorError{
			Denominator:    domain.Denominator,
			FeeBasisPoints: feeBasisPoints,
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.GlobalConfig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", schema.GlobalConfigRowID).Error; err != nil {
			return err
		}

		return tx.Model(&row).Updates(map[string]interface{}{
			"fee_basis_points": feeBasisPoints,
			"updated_at":       s.clock.Now().UTC(),
		}).Error
	})
}

func (s *pgStore) SetFeeRecipient(ctx context.Context, recipient common.Address) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.GlobalConfig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", schema.GlobalConfigRowID).Error; err != nil {
			return err
		}

		if common.HexToAddress(row.FeeRecipient) == recipient {
			return &domain.RecipientUnchangedError{Recipient: recipient}
		}

		return tx.Model(&row).Updates(map[string]interface{}{
			"fee_recipient": recipient.Hex(),
			"updated_at":    s.clock.Now().UTC(),
		}).Error
	})
}

func (s *pgStore) CreateAuction(ctx context.Context, terms *domain.Auction) (*domain.Auction, error) {
	var created *domain.Auction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfg schema.GlobalConfig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cfg, "id = ?", schema.GlobalConfigRowID).Error; err != nil {
			return err
		}

		if err := domain.ValidateTerms(terms.Duration, cfg.FeeBasisPoints, terms.RoyaltyBasisPoints); err != nil {
			return err
		}

		a := *terms
		a.ID = cfg.NextAuctionID
		a.FeeBasisPoints = cfg.FeeBasisPoints
		a.StartTime = s.clock.Now().UTC().Truncate(time.Second)

		row := fromDomainAuction(&a)
		if err := tx.Create(row).Error; err != nil {
			return err
		}

		if err := tx.Model(&cfg).Updates(map[string]interface{}{
			"next_auction_id": cfg.NextAuctionID + 1,
			"updated_at":      s.clock.Now().UTC(),
		}).Error; err != nil {
			return err
		}

		created = &a

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *pgStore) GetAuction(ctx context.Context, id uint64) (*domain.Auction, error) {
	var row schema.Auction
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.AuctionNotFoundError{ID: id}
		}

		return nil, err
	}

	return toDomainAuction(&row)
}

func (s *pgStore) ResolveAuction(ctx context.Context, id uint64, settle func(a *domain.Auction, cfg *domain.GlobalConfig) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.Auction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.AuctionNotFoundError{ID: id}
			}

			return err
		}

		var cfgRow schema.GlobalConfig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cfgRow, "id = ?", schema.GlobalConfigRowID).Error; err != nil {
			return err
		}

		a, err := toDomainAuction(&row)
		if err != nil {
			return err
		}

		if err := settle(a, toDomainConfig(&cfgRow)); err != nil {
			return err
		}

		result := tx.Delete(&schema.Auction{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return fmt.Errorf("auction %d vanished during settlement", id)
		}

		return nil
	})
}

func fromDomainAuction(a *domain.Auction) *schema.Auction {
	return &schema.Auction{
		ID:                 a.ID,
		TokenContract:      a.Asset.TokenContract.Hex(),
		TokenID:            a.Asset.TokenID.String(),
		TokenType:          string(a.Asset.TokenType),
		Amount:             a.Amount.String(),
		SaleToken:          a.SaleToken.Hex(),
		Seller:             a.Seller.Hex(),
		StartPrice:         a.StartPrice.String(),
		ReservePrice:       a.ReservePrice.String(),
		FeeBasisPoints:     a.FeeBasisPoints,
		RoyaltyRecipient:   a.RoyaltyRecipient.Hex(),
		RoyaltyBasisPoints: a.RoyaltyBasisPoints,
		Duration:           a.Duration,
		StartTime:          a.StartTime,
	}
}

func toDomainAuction(row *schema.Auction) (*domain.Auction, error) {
	tokenID, ok := new(big.Int).SetString(row.TokenID, 10)
	if !ok {
		return nil, fmt.Errorf("auction %d: malformed token id %q", row.ID, row.TokenID)
	}

	amount, ok := new(big.Int).SetString(row.Amount, 10)
	if !ok {
		return nil, fmt.Errorf("auction %d: malformed amount %q", row.ID, row.Amount)
	}

	startPrice, ok := new(big.Int).SetString(row.StartPrice, 10)
	if !ok {
		return nil, fmt.Errorf("auction %d: malformed start price %q", row.ID, row.StartPrice)
	}

	reservePrice, ok := new(big.Int).SetString(row.ReservePrice, 10)
	if !ok {
		return nil, fmt.Errorf("auction %d: malformed reserve price %q", row.ID, row.ReservePrice)
	}

	return &domain.Auction{
		ID: row.ID,
		Asset: domain.AssetReference{
			TokenContract: common.HexToAddress(row.TokenContract),
			TokenID:       tokenID,
			TokenType:     domain.TokenType(row.TokenType),
		},
		Amount:             amount,
		SaleToken:          common.HexToAddress(row.SaleToken),
		Seller:             common.HexToAddress(row.Seller),
		StartPrice:         startPrice,
		ReservePrice:       reservePrice,
		FeeBasisPoints:     row.FeeBasisPoints,
		RoyaltyRecipient:   common.HexToAddress(row.RoyaltyRecipient),
		RoyaltyBasisPoints: row.RoyaltyBasisPoints,
		Duration:           row.Duration,
		StartTime:          row.StartTime.UTC(),
	}, nil
}

func toDomainConfig(row *schema.GlobalConfig) *domain.GlobalConfig {
	return &domain.GlobalConfig{
		Owner:          common.HexToAddress(row.Owner),
		FeeBasisPoints: row.FeeBasisPoints,
		FeeRecipient:   common.HexToAddress(row.FeeRecipient),
	}
}
