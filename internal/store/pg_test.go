package store

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bulbafloor/auction-engine/internal/domain"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := AutoMigrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// fixedClock returns a constant time so auction timestamps are deterministic
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time                  { return c.now }
func (c *fixedClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }

var (
	testOwner        = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testFeeRecipient = common.HexToAddress("0x1000000000000000000000000000000000000002")
	testSeller       = common.HexToAddress("0x1000000000000000000000000000000000000003")
	testSaleToken    = common.HexToAddress("0x1000000000000000000000000000000000000004")
	testNFT          = common.HexToAddress("0x1000000000000000000000000000000000000005")
	testRoyaltyRcpt  = common.HexToAddress("0x1000000000000000000000000000000000000006")
)

// initPGTestDB creates a store bound to a transaction so each test sees a
// clean, isolated ledger
func initPGTestDB(t *testing.T) (Store, *fixedClock) {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	return NewPGStore(tx, clock), clock
}

func seedTestConfig(t *testing.T, s Store) {
	err := s.SeedGlobalConfig(context.Background(), &domain.GlobalConfig{
		Owner:          testOwner,
		FeeBasisPoints: 100,
		FeeRecipient:   testFeeRecipient,
	})
	require.NoError(t, err)
}

func newTestTerms() *domain.Auction {
	return &domain.Auction{
		Asset: domain.AssetReference{
			TokenContract: testNFT,
			TokenID:       big.NewInt(7),
			TokenType:     domain.TokenTypeERC721,
		},
		Amount:             big.NewInt(1),
		SaleToken:          testSaleToken,
		Seller:             testSeller,
		StartPrice:         big.NewInt(10000),
		ReservePrice:       big.NewInt(250),
		RoyaltyRecipient:   testRoyaltyRcpt,
		RoyaltyBasisPoints: 100,
		Duration:           10000,
	}
}

func TestSeedGlobalConfig(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()

	seedTestConfig(t, s)

	cfg, err := s.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
	assert.Equal(t, uint64(100), cfg.FeeBasisPoints)
	assert.Equal(t, testFeeRecipient, cfg.FeeRecipient)

	// Seeding again must not overwrite the existing row
	err = s.SeedGlobalConfig(ctx, &domain.GlobalConfig{
		Owner:          testSeller,
		FeeBasisPoints: 9999,
		FeeRecipient:   testSeller,
	})
	require.NoError(t, err)

	cfg, err = s.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
	assert.Equal(t, uint64(100), cfg.FeeBasisPoints)
}

func TestSetFeeBasisPoints(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	require.NoError(t, s.SetFeeBasisPoints(ctx, 250))

	cfg, err := s.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), cfg.FeeBasisPoints)

	err = s.SetFeeBasisPoints(ctx, domain.Denominator+1)
	var feeErr *domain.FeeExceedsDenominatorError
	require.ErrorAs(t, err, &feeErr)
	assert.Equal(t, domain.Denominator+1, feeErr.FeeBasisPoints)

	// The full denominator itself is allowed
	require.NoError(t, s.SetFeeBasisPoints(ctx, domain.Denominator))
}

func TestSetFeeRecipient(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	next := common.HexToAddress("0x2000000000000000000000000000000000000001")
	require.NoError(t, s.SetFeeRecipient(ctx, next))

	cfg, err := s.GetGlobalConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, cfg.FeeRecipient)

	err = s.SetFeeRecipient(ctx, next)
	var unchangedErr *domain.RecipientUnchangedError
	require.ErrorAs(t, err, &unchangedErr)
	assert.Equal(t, next, unchangedErr.Recipient)
}

func TestCreateAuctionAssignsSequentialIDs(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	first, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.ID)

	second, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), second.ID)
}

func TestCreateAuctionSnapshotsFee(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	a, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), a.FeeBasisPoints)

	// Raising the fee must not touch the open auction's snapshot
	require.NoError(t, s.SetFeeBasisPoints(ctx, 500))

	got, err := s.GetAuction(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), got.FeeBasisPoints)

	b, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)
	assert.Equal(t, uint64(500), b.FeeBasisPoints)
}

func TestCreateAuctionValidatesTerms(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	zeroDuration := newTestTerms()
	zeroDuration.Duration = 0
	_, err := s.CreateAuction(ctx, zeroDuration)
	var durationErr *domain.DurationIsZeroError
	require.ErrorAs(t, err, &durationErr)

	overSum := newTestTerms()
	overSum.RoyaltyBasisPoints = domain.Denominator
	_, err = s.CreateAuction(ctx, overSum)
	var sumErr *domain.FeeRoyaltySumExceedsDenominatorError
	require.ErrorAs(t, err, &sumErr)
	assert.Equal(t, uint64(100), sumErr.FeeBasisPoints)
	assert.Equal(t, domain.Denominator, sumErr.RoyaltyBasisPoints)
}

func TestGetAuctionRoundtrip(t *testing.T) {
	s, clock := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	terms := newTestTerms()
	terms.StartPrice, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	created, err := s.CreateAuction(ctx, terms)
	require.NoError(t, err)

	got, err := s.GetAuction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, terms.Asset, got.Asset)
	assert.Equal(t, terms.Seller, got.Seller)
	assert.Zero(t, terms.StartPrice.Cmp(got.StartPrice))
	assert.Zero(t, terms.ReservePrice.Cmp(got.ReservePrice))
	assert.True(t, clock.now.Equal(got.StartTime))
}

func TestGetAuctionNotFound(t *testing.T) {
	s, _ := initPGTestDB(t)
	seedTestConfig(t, s)

	_, err := s.GetAuction(context.Background(), 42)
	var notFound *domain.AuctionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint64(42), notFound.ID)
}

func TestResolveAuctionDeletesOnSuccess(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	a, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)

	var seenID uint64
	err = s.ResolveAuction(ctx, a.ID, func(a *domain.Auction, cfg *domain.GlobalConfig) error {
		seenID = a.ID
		assert.Equal(t, testFeeRecipient, cfg.FeeRecipient)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, seenID)

	_, err = s.GetAuction(ctx, a.ID)
	var notFound *domain.AuctionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestResolveAuctionRollsBackOnSettleError(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	a, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)

	settleErr := fmt.Errorf("transfer reverted")
	err = s.ResolveAuction(ctx, a.ID, func(*domain.Auction, *domain.GlobalConfig) error {
		return settleErr
	})
	require.ErrorIs(t, err, settleErr)

	// The auction must still be open
	got, err := s.GetAuction(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestResolveAuctionNotFound(t *testing.T) {
	s, _ := initPGTestDB(t)
	seedTestConfig(t, s)

	err := s.ResolveAuction(context.Background(), 77, func(*domain.Auction, *domain.GlobalConfig) error {
		t.Fatal("settle must not be called for a missing auction")
		return nil
	})
	var notFound *domain.AuctionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint64(77), notFound.ID)
}

func TestResolveAuctionSeesLiveFeeRecipient(t *testing.T) {
	s, _ := initPGTestDB(t)
	ctx := context.Background()
	seedTestConfig(t, s)

	a, err := s.CreateAuction(ctx, newTestTerms())
	require.NoError(t, err)

	next := common.HexToAddress("0x2000000000000000000000000000000000000009")
	require.NoError(t, s.SetFeeRecipient(ctx, next))

	err = s.ResolveAuction(ctx, a.ID, func(a *domain.Auction, cfg *domain.GlobalConfig) error {
		assert.Equal(t, next, cfg.FeeRecipient)
		return nil
	})
	require.NoError(t, err)
}
