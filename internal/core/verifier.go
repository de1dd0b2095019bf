package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"
)

const verifyBatchSize = 50

// Verifier turns client-reported registrations into verified ones. A
// content record enters the index as registered on the caller's word; the
// verifier polls the ledger for the reported transaction and moves the
// record to active once the receipt confirms it, or to inactive when the
// transaction is mined as failed.
type Verifier struct {
	logs     *zap.SugaredLogger
	repo     Repository
	ledger   LedgerService
	interval time.Duration
}

func NewVerifier(logger *zap.SugaredLogger, repo Repository, ledger LedgerService, interval time.Duration) *Verifier {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Verifier{
		logs:     logger,
		repo:     repo,
		ledger:   ledger,
		interval: interval,
	}
}

// Run blocks until ctx is done, sweeping pending registrations on every
// tick.
func (v *Verifier) Run(ctx context.Context) {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Sweep(ctx)
		}
	}
}

// Sweep checks one batch of pending registrations against the ledger.
func (v *Verifier) Sweep(ctx context.Context) {
	pending, err := v.repo.PendingVerification(ctx, verifyBatchSize)
	if err != nil {
		v.logs.Errorw("fetching pending registrations", "error", err)
		return
	}

	for _, content := range pending {
		confirmation, err := v.ledger.Confirm(ctx, content.TxHash)
		if errors.Is(err, ethereum.ErrNotConfirmed) {
			continue
		}
		if err != nil {
			v.logs.Errorw("confirming registration",
				"error", err,
				"contentId", content.ID,
				"txHash", content.TxHash)
			continue
		}

		status := repository.ContentStatusActive
		if !confirmation.Succeeded {
			status = repository.ContentStatusInactive
		}

		if err := v.repo.SetContentStatus(ctx, content.ID, status); err != nil {
			v.logs.Errorw("updating verified registration",
				"error", err,
				"contentId", content.ID)
			continue
		}

		v.logs.Infow("registration verified",
			"contentId", content.ID,
			"txHash", content.TxHash,
			"status", status,
			"blockNumber", confirmation.BlockNumber)
	}
}
