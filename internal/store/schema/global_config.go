package schema

import "time"

// GlobalConfigRowID is the primary key of the single configuration row.
const GlobalConfigRowID = 1

// GlobalConfig holds marketplace-wide settings and the auction id counter.
// Exactly one row exists; every settlement transaction locks it so auction
// ids are assigned sequentially and never reused.
type GlobalConfig struct {
	ID             uint32    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Owner          string    `gorm:"column:owner;type:varchar(42);not null"`
	FeeBasisPoints uint64    `gorm:"column:fee_basis_points;not null"`
	FeeRecipient   string    `gorm:"column:fee_recipient;type:varchar(42);not null"`
	NextAuctionID  uint64    `gorm:"column:next_auction_id;not null;default:0"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

func (GlobalConfig) TableName() string {
	return "global_config"
}
