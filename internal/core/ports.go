package core

import (
	"context"

	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum"
	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUpload(ctx context.Context, upload repository.Upload) error
	SetUploadResult(ctx context.Context, id, status, ipfsHash string) error
	GetUpload(ctx context.Context, id string) (repository.Upload, error)
	CreateContent(ctx context.Context, content repository.Content) error
	ContentByOwner(ctx context.Context, userAddress string) ([]repository.Content, error)
	MarketplaceContent(ctx context.Context, limit int) ([]repository.Content, error)
	PendingVerification(ctx context.Context, limit int) ([]repository.Content, error)
	SetContentStatus(ctx context.Context, id, status string) error
	CreateTransaction(ctx context.Context, transaction repository.Transaction) error
	TransactionsByUser(ctx context.Context, userAddress string) ([]repository.Transaction, error)
	Totals(ctx context.Context) (repository.Totals, error)
}

//counterfeiter:generate -o fake -fake-name StorageService . StorageService
type StorageService interface {
	Store(ctx context.Context, data []byte, fileName string) (ipfs.StoredObject, error)
	Healthy(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	Confirm(ctx context.Context, txHash string) (*ethereum.Confirmation, error)
	Healthy(ctx context.Context) error
}
