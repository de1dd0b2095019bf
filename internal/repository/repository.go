package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/0Selene/DRManagerProject-Complete/internal/db"
)

var ErrUploadNotFound error = errors.New("upload record not found")
var ErrDuplicateContent error = errors.New("content already registered for this owner")

const createdAtDesc = "created_at DESC"

type RegistryRepository struct {
	db Storage
}

func NewRegistryRepository(db Storage) *RegistryRepository {
	return &RegistryRepository{
		db: db,
	}
}

func (r *RegistryRepository) MigrateTables() error {
	err := r.db.MigrateTable(&Upload{}, &Content{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *RegistryRepository) CreateUpload(ctx context.Context, upload Upload) error {
	if err := r.db.CreateRecord(ctx, &upload); err != nil {
		return fmt.Errorf("create upload record: %w", err)
	}

	return nil
}

// SetUploadResult moves an upload record to a terminal status. IPFSHash is
// empty for the failed status.
func (r *RegistryRepository) SetUploadResult(ctx context.Context, id, status, ipfsHash string) error {
	fields := map[string]any{
		"status":    status,
		"ipfs_hash": ipfsHash,
	}
	err := r.db.UpdateBy(ctx, &Upload{}, "id", id, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUploadNotFound
		}
		return fmt.Errorf("update upload record: %w", err)
	}

	return nil
}

func (r *RegistryRepository) GetUpload(ctx context.Context, id string) (Upload, error) {
	var upload Upload

	err := r.db.GetOneBy(ctx, "id", id, &upload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Upload{}, ErrUploadNotFound
		}
		return Upload{}, fmt.Errorf("get upload by id: %w", err)
	}

	return upload, nil
}

func (r *RegistryRepository) CreateContent(ctx context.Context, content Content) error {
	err := r.db.CreateRecord(ctx, &content)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateContent
		}
		return fmt.Errorf("create content record: %w", err)
	}

	return nil
}

func (r *RegistryRepository) ContentByOwner(ctx context.Context, userAddress string) ([]Content, error) {
	contents := []Content{}
	err := r.db.GetAllBy(ctx, "user_address", []string{userAddress}, &contents, db.QueryOpts{OrderBy: createdAtDesc})
	if err != nil {
		return nil, fmt.Errorf("get content by owner: %w", err)
	}

	return contents, nil
}

// MarketplaceContent lists publicly visible records, newest first. Verified
// registrations carry the active status, so both states are listed.
func (r *RegistryRepository) MarketplaceContent(ctx context.Context, limit int) ([]Content, error) {
	contents := []Content{}
	opts := db.QueryOpts{OrderBy: createdAtDesc, Limit: limit}
	statuses := []string{ContentStatusRegistered, ContentStatusActive}
	err := r.db.GetAllBy(ctx, "status", statuses, &contents, opts)
	if err != nil {
		return nil, fmt.Errorf("get marketplace content: %w", err)
	}

	return contents, nil
}

// PendingVerification returns registered content records awaiting ledger
// confirmation, oldest first so nothing starves.
func (r *RegistryRepository) PendingVerification(ctx context.Context, limit int) ([]Content, error) {
	contents := []Content{}
	opts := db.QueryOpts{OrderBy: "created_at ASC", Limit: limit}
	err := r.db.GetAllBy(ctx, "status", []string{ContentStatusRegistered}, &contents, opts)
	if err != nil {
		return nil, fmt.Errorf("get pending content: %w", err)
	}

	return contents, nil
}

func (r *RegistryRepository) SetContentStatus(ctx context.Context, id, status string) error {
	err := r.db.UpdateBy(ctx, &Content{}, "id", id, map[string]any{"status": status})
	if err != nil {
		return fmt.Errorf("update content status: %w", err)
	}

	return nil
}

func (r *RegistryRepository) CreateTransaction(ctx context.Context, transaction Transaction) error {
	if err := r.db.CreateRecord(ctx, &transaction); err != nil {
		return fmt.Errorf("create transaction record: %w", err)
	}

	return nil
}

func (r *RegistryRepository) TransactionsByUser(ctx context.Context, userAddress string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "user_address", []string{userAddress}, &transactions, db.QueryOpts{OrderBy: createdAtDesc})
	if err != nil {
		return nil, fmt.Errorf("get transactions by user: %w", err)
	}

	return transactions, nil
}

func (r *RegistryRepository) Totals(ctx context.Context) (Totals, error) {
	uploads, err := r.db.CountBy(ctx, &Upload{}, nil)
	if err != nil {
		return Totals{}, fmt.Errorf("count uploads: %w", err)
	}

	contents, err := r.db.CountBy(ctx, &Content{}, nil)
	if err != nil {
		return Totals{}, fmt.Errorf("count contents: %w", err)
	}

	transactions, err := r.db.CountBy(ctx, &Transaction{}, nil)
	if err != nil {
		return Totals{}, fmt.Errorf("count transactions: %w", err)
	}

	owners, err := r.db.CountDistinct(ctx, &Content{}, "user_address")
	if err != nil {
		return Totals{}, fmt.Errorf("count distinct owners: %w", err)
	}

	return Totals{
		Uploads:      uploads,
		Contents:     contents,
		Transactions: transactions,
		Owners:       owners,
	}, nil
}
