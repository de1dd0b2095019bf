package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/0Selene/DRManagerProject-Complete/internal/repository"
)

var ErrMissingInput error = errors.New("missing required information")
var ErrInvalidAmount error = errors.New("invalid decimal amount")
var ErrUnknownTransactionType error = errors.New("unknown transaction type")
var ErrUploadNotFound error = errors.New("upload record not found")
var ErrDuplicateContent error = errors.New("content already registered for this owner")

const marketplaceLimit = 50

// Registry sequences the registration workflow (fingerprint, store,
// record) and serves reads from the local index. On-chain submission stays
// with the caller's wallet: the registry only records reported transaction
// hashes, which the verifier later checks against the ledger.
type Registry struct {
	logs    *zap.SugaredLogger
	repo    Repository
	storage StorageService
	ledger  LedgerService
}

func NewRegistry(logger *zap.SugaredLogger, repo Repository, storage StorageService, ledger LedgerService) *Registry {
	return &Registry{
		logs:    logger,
		repo:    repo,
		storage: storage,
		ledger:  ledger,
	}
}

// UploadFile stores the buffer on the storage network and mirrors the
// attempt in the local index. The upload record is created pending before
// the network call and moved to a terminal status after it, so the index
// never reports a completed upload the network did not acknowledge.
func (r *Registry) UploadFile(ctx context.Context, msg UploadMessage) (UploadResult, error) {
	if len(msg.Data) == 0 || msg.FileName == "" {
		return UploadResult{}, fmt.Errorf("%w: file payload and name are required", ErrMissingInput)
	}

	upload := repository.Upload{
		ID:       uuid.NewString(),
		FileName: msg.FileName,
		FileSize: int64(len(msg.Data)),
		MimeType: msg.MimeType,
		Status:   repository.UploadStatusPending,
	}
	if err := r.repo.CreateUpload(ctx, upload); err != nil {
		return UploadResult{}, fmt.Errorf("create upload record: %w", err)
	}

	obj, err := r.storage.Store(ctx, msg.Data, msg.FileName)
	if err != nil {
		// terminal status writes must survive a caller disconnect
		if dbErr := r.repo.SetUploadResult(context.WithoutCancel(ctx), upload.ID, repository.UploadStatusFailed, ""); dbErr != nil {
			r.logs.Errorw("failed to mark upload as failed", "error", dbErr, "uploadId", upload.ID)
		}
		return UploadResult{}, fmt.Errorf("store file: %w", err)
	}

	if err := r.repo.SetUploadResult(context.WithoutCancel(ctx), upload.ID, repository.UploadStatusCompleted, obj.CID); err != nil {
		return UploadResult{}, fmt.Errorf("record upload result: %w", err)
	}

	r.logs.Infow("file uploaded",
		"uploadId", upload.ID,
		"ipfsHash", obj.CID,
		"fileName", msg.FileName,
		"fileSize", upload.FileSize)

	return UploadResult{
		UploadID:    upload.ID,
		IPFSHash:    obj.CID,
		FileName:    msg.FileName,
		FileSize:    upload.FileSize,
		Fingerprint: obj.Fingerprint,
		GatewayURL:  obj.GatewayURL,
	}, nil
}

// RegisterContent persists the caller's assertion that a ledger transaction
// registering the content address exists. Both the content address and the
// transaction hash are required, a content record is never created with
// either missing.
func (r *Registry) RegisterContent(ctx context.Context, msg RegisterMessage) (string, error) {
	if msg.UserAddress == "" || msg.Title == "" || msg.IPFSHash == "" || msg.TxHash == "" {
		return "", fmt.Errorf("%w: userAddress, title, ipfsHash and txHash are required", ErrMissingInput)
	}

	price, err := parseAmount(msg.Price)
	if err != nil {
		return "", err
	}

	category := msg.Category
	if category == "" {
		category = "other"
	}

	content := repository.Content{
		ID:          uuid.NewString(),
		UserAddress: strings.ToLower(msg.UserAddress),
		Title:       msg.Title,
		Description: msg.Description,
		Category:    category,
		Price:       price,
		IPFSHash:    msg.IPFSHash,
		TxHash:      msg.TxHash,
		BlockNumber: msg.BlockNumber,
		Status:      repository.ContentStatusRegistered,
	}

	err = r.repo.CreateContent(ctx, content)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateContent) {
			return "", ErrDuplicateContent
		}
		return "", fmt.Errorf("create content record: %w", err)
	}

	// The ledger mirror entry is best effort: the content record is already
	// committed and the caller can replay the entry through the transaction
	// endpoint, so a failure here must not fail the registration.
	mirror := repository.Transaction{
		ID:          uuid.NewString(),
		Type:        repository.TransactionTypeRegister,
		UserAddress: content.UserAddress,
		ContentID:   &content.ID,
		TxHash:      msg.TxHash,
		Amount:      decimal.Zero,
		BlockNumber: msg.BlockNumber,
	}
	if err := r.repo.CreateTransaction(ctx, mirror); err != nil {
		r.logs.Errorw("failed to append register transaction", "error", err, "contentId", content.ID, "txHash", msg.TxHash)
	}

	r.logs.Infow("content registered",
		"contentId", content.ID,
		"userAddress", content.UserAddress,
		"ipfsHash", msg.IPFSHash,
		"txHash", msg.TxHash)

	return content.ID, nil
}

// RecordTransaction appends one ledger mirror entry.
func (r *Registry) RecordTransaction(ctx context.Context, msg TransactionMessage) (string, error) {
	if msg.UserAddress == "" || msg.TxHash == "" || msg.Type == "" {
		return "", fmt.Errorf("%w: type, userAddress and txHash are required", ErrMissingInput)
	}

	switch msg.Type {
	case repository.TransactionTypeRegister, repository.TransactionTypePurchase, repository.TransactionTypeLicense:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, msg.Type)
	}

	amount, err := parseAmount(msg.Amount)
	if err != nil {
		return "", err
	}

	transaction := repository.Transaction{
		ID:          uuid.NewString(),
		Type:        msg.Type,
		UserAddress: strings.ToLower(msg.UserAddress),
		TxHash:      msg.TxHash,
		Amount:      amount,
		BlockNumber: msg.BlockNumber,
		GasUsed:     msg.GasUsed,
	}
	if msg.ContentID != "" {
		contentID := msg.ContentID
		transaction.ContentID = &contentID
	}

	if err := r.repo.CreateTransaction(ctx, transaction); err != nil {
		return "", fmt.Errorf("create transaction record: %w", err)
	}

	r.logs.Infow("transaction recorded",
		"transactionId", transaction.ID,
		"type", msg.Type,
		"txHash", msg.TxHash,
		"amount", amount.String())

	return transaction.ID, nil
}

func (r *Registry) UserContent(ctx context.Context, userAddress string) ([]ContentRecord, error) {
	if userAddress == "" {
		return nil, fmt.Errorf("%w: address is required", ErrMissingInput)
	}

	contents, err := r.repo.ContentByOwner(ctx, strings.ToLower(userAddress))
	if err != nil {
		return nil, fmt.Errorf("get user content: %w", err)
	}

	return r.contentToRecords(contents), nil
}

func (r *Registry) Marketplace(ctx context.Context) ([]ContentRecord, error) {
	contents, err := r.repo.MarketplaceContent(ctx, marketplaceLimit)
	if err != nil {
		return nil, fmt.Errorf("get marketplace content: %w", err)
	}

	return r.contentToRecords(contents), nil
}

func (r *Registry) UploadStatus(ctx context.Context, id string) (UploadRecord, error) {
	if id == "" {
		return UploadRecord{}, fmt.Errorf("%w: upload id is required", ErrMissingInput)
	}

	upload, err := r.repo.GetUpload(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUploadNotFound) {
			return UploadRecord{}, ErrUploadNotFound
		}
		return UploadRecord{}, fmt.Errorf("get upload: %w", err)
	}

	return UploadRecord{
		ID:        upload.ID,
		FileName:  upload.FileName,
		FileSize:  upload.FileSize,
		MimeType:  upload.MimeType,
		IPFSHash:  upload.IPFSHash,
		Status:    upload.Status,
		CreatedAt: upload.CreatedAt,
	}, nil
}

// UserStats aggregates one owner's content count, transaction count and
// purchase earnings. Earnings are summed as decimals, never floats.
func (r *Registry) UserStats(ctx context.Context, userAddress string) (UserStats, error) {
	if userAddress == "" {
		return UserStats{}, fmt.Errorf("%w: address is required", ErrMissingInput)
	}
	addr := strings.ToLower(userAddress)

	contents, err := r.repo.ContentByOwner(ctx, addr)
	if err != nil {
		return UserStats{}, fmt.Errorf("get user content: %w", err)
	}

	transactions, err := r.repo.TransactionsByUser(ctx, addr)
	if err != nil {
		return UserStats{}, fmt.Errorf("get user transactions: %w", err)
	}

	earnings := decimal.Zero
	licenses := 0
	for _, tx := range transactions {
		switch tx.Type {
		case repository.TransactionTypePurchase:
			earnings = earnings.Add(tx.Amount)
		case repository.TransactionTypeLicense:
			licenses++
		}
	}

	return UserStats{
		TotalFiles:        len(contents),
		TotalEarnings:     earnings.StringFixed(4),
		ActiveLicenses:    licenses,
		TotalTransactions: len(transactions),
	}, nil
}

func (r *Registry) GlobalStats(ctx context.Context) (GlobalStats, error) {
	totals, err := r.repo.Totals(ctx)
	if err != nil {
		return GlobalStats{}, fmt.Errorf("get totals: %w", err)
	}

	return GlobalStats{
		TotalUploads:      totals.Uploads,
		TotalContents:     totals.Contents,
		TotalTransactions: totals.Transactions,
		TotalUsers:        totals.Owners,
	}, nil
}

// Health reports per-dependency status. A database failure makes the whole
// process unhealthy since every operation needs the index; storage network
// or ledger failures are reported per service only.
func (r *Registry) Health(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services: map[string]string{
			"api":      "running",
			"database": "unknown",
			"ipfs":     "unknown",
			"ethereum": "unknown",
		},
	}

	totals, err := r.repo.Totals(ctx)
	if err != nil {
		r.logs.Errorw("database health check failed", "error", err)
		report.Services["database"] = "error"
		report.Status = "unhealthy"
	} else {
		report.Services["database"] = "healthy"
		report.Stats = HealthCounts{
			TotalUploads:      totals.Uploads,
			TotalContents:     totals.Contents,
			TotalTransactions: totals.Transactions,
		}
	}

	if err := r.storage.Healthy(ctx); err != nil {
		r.logs.Errorw("storage health check failed", "error", err)
		report.Services["ipfs"] = "error"
	} else {
		report.Services["ipfs"] = "healthy"
	}

	if err := r.ledger.Healthy(ctx); err != nil {
		r.logs.Errorw("ethereum health check failed", "error", err)
		report.Services["ethereum"] = "error"
	} else {
		report.Services["ethereum"] = "healthy"
	}

	return report
}

func (r *Registry) contentToRecords(contents []repository.Content) []ContentRecord {
	records := make([]ContentRecord, len(contents))
	for i, content := range contents {
		records[i] = ContentRecord{
			ID:          content.ID,
			UserAddress: content.UserAddress,
			Title:       content.Title,
			Description: content.Description,
			Category:    content.Category,
			Price:       content.Price.String(),
			IPFSHash:    content.IPFSHash,
			TxHash:      content.TxHash,
			BlockNumber: content.BlockNumber,
			Status:      content.Status,
			CreatedAt:   content.CreatedAt,
		}
	}
	return records
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}
