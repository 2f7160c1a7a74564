package schema

import "time"

// Auction is the persisted form of an open auction. Price and token amounts
// are stored as decimal strings since they carry uint256 values.
type Auction struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement:false"`
	TokenContract      string    `gorm:"column:token_contract;type:varchar(42);not null;index"`
	TokenID            string    `gorm:"column:token_id;type:text;not null"`
	TokenType          string    `gorm:"column:token_type;type:varchar(8);not null"`
	Amount             string    `gorm:"column:amount;type:text;not null"`
	SaleToken          string    `gorm:"column:sale_token;type:varchar(42);not null"`
	Seller             string    `gorm:"column:seller;type:varchar(42);not null;index"`
	StartPrice         string    `gorm:"column:start_price;type:text;not null"`
	ReservePrice       string    `gorm:"column:reserve_price;type:text;not null"`
	FeeBasisPoints     uint64    `gorm:"column:fee_basis_points;not null"`
	RoyaltyRecipient   string    `gorm:"column:royalty_recipient;type:varchar(42);not null"`
	RoyaltyBasisPoints uint64    `gorm:"column:royalty_basis_points;not null"`
	Duration           uint64    `gorm:"column:duration;not null"`
	StartTime          time.Time `gorm:"column:start_time;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;default:now()"`
}

func (Auction) TableName() string {
	return "auctions"
}
