package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UploadStatusPending   = "pending"
	UploadStatusCompleted = "completed"
	UploadStatusFailed    = "failed"
)

const (
	ContentStatusRegistered = "registered"
	ContentStatusActive     = "active"
	ContentStatusInactive   = "inactive"
)

const (
	TransactionTypeRegister = "register"
	TransactionTypePurchase = "purchase"
	TransactionTypeLicense  = "license"
)

// Upload mirrors one storage network write attempt. IPFSHash is non-empty
// only once the record reaches the completed status.
type Upload struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	FileName  string `gorm:"type:varchar(255);not null"`
	FileSize  int64  `gorm:"not null"`
	MimeType  string `gorm:"type:varchar(100);not null"`
	IPFSHash  string `gorm:"size:100;index"`
	Status    string `gorm:"size:20;not null;default:pending"`
	CreatedAt time.Time
}

// Content asserts that a ledger transaction registering IPFSHash under
// UserAddress exists. The (ipfs_hash, user_address) pair is unique so a
// concurrent re-registration cannot produce a second record.
type Content struct {
	ID          string          `gorm:"primaryKey;autoIncrement:false"`
	UserAddress string          `gorm:"size:42;not null;index;uniqueIndex:idx_contents_hash_owner"` // always lowercased
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"size:50;not null;default:other"`
	Price       decimal.Decimal `gorm:"type:decimal(18,8);not null;default:0"`
	IPFSHash    string          `gorm:"size:100;not null;uniqueIndex:idx_contents_hash_owner"`
	TxHash      string          `gorm:"size:66;not null"`
	BlockNumber int64           `gorm:"index"`
	Status      string          `gorm:"size:20;not null;default:registered"`
	CreatedAt   time.Time
}

// Transaction is an append-only ledger mirror entry, never updated after
// creation.
type Transaction struct {
	ID          string          `gorm:"primaryKey;autoIncrement:false"`
	Type        string          `gorm:"size:20;not null;index"`
	UserAddress string          `gorm:"size:42;not null;index"` // always lowercased
	ContentID   *string         `gorm:"size:64"`
	TxHash      string          `gorm:"size:66;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,8);not null;default:0"`
	BlockNumber int64
	GasUsed     int64
	CreatedAt   time.Time
}

// Totals carries the global record counts served by the health and stats
// endpoints.
type Totals struct {
	Uploads      int64
	Contents     int64
	Transactions int64
	Owners       int64
}
