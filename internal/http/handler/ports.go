package handler

import (
	"context"
	"net/http"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RegistryService . RegistryService
type RegistryService interface {
	UploadFile(ctx context.Context, msg core.UploadMessage) (core.UploadResult, error)
	RegisterContent(ctx context.Context, msg core.RegisterMessage) (string, error)
	RecordTransaction(ctx context.Context, msg core.TransactionMessage) (string, error)
	UserContent(ctx context.Context, userAddress string) ([]core.ContentRecord, error)
	Marketplace(ctx context.Context) ([]core.ContentRecord, error)
	UploadStatus(ctx context.Context, id string) (core.UploadRecord, error)
	UserStats(ctx context.Context, userAddress string) (core.UserStats, error)
	GlobalStats(ctx context.Context) (core.GlobalStats, error)
	Health(ctx context.Context) core.HealthReport
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
