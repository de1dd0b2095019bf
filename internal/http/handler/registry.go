package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/handler/middleware"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/payload"
)

var (
	UploadFile        = "POST /api/upload"
	RegisterContent   = "POST /api/content/register"
	UserContent       = "GET /api/content/user/{address}"
	Marketplace       = "GET /api/content/marketplace"
	RecordTransaction = "POST /api/transaction/record"
	UploadStatus      = "GET /api/upload/status/{id}"
	HealthCheck       = "GET /api/health"
	GlobalStats       = "GET /api/stats"
	UserStats         = "GET /api/stats/{address}"
)

// uploads above the cap are rejected before the storage network is touched
var allowedMimePrefixes = []string{"image/", "application/", "text/", "audio/", "video/"}

type RegistryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	registry         RegistryService
	maxUploadBytes   int64
}

func NewRegistryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, registryService RegistryService, maxUploadBytes int64) *RegistryHandler {
	return &RegistryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		registry:         registryService,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *RegistryHandler) HandleUploadFile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	// the extra megabyte covers multipart framing around a max-size file
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		message := "No file received"
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			message = "File size exceeds limit (100MB)"
		}
		h.respond(w, Response{Success: false, Error: message}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to read multipart file",
			"error", err,
			"handler", UploadFile,
			"request_id", requestId)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.respond(w, Response{Success: false, Error: "File size exceeds limit (100MB)"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("upload above size limit",
			"fileSize", header.Size,
			"handler", UploadFile,
			"request_id", requestId)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if !mimeTypeAllowed(mimeType) {
		h.respond(w, Response{Success: false, Error: "Unsupported file type"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("unsupported mime type",
			"mimeType", mimeType,
			"handler", UploadFile,
			"request_id", requestId)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respond(w, Response{Success: false, Error: "reading uploaded file failed"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to read upload body",
			"error", err,
			"handler", UploadFile,
			"request_id", requestId)
		return
	}

	h.logs.Infow("upload request received",
		"fileName", header.Filename,
		"fileSize", header.Size,
		"handler", UploadFile,
		"request_id", requestId)

	result, err := h.registry.UploadFile(r.Context(), core.UploadMessage{
		FileName: header.Filename,
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("upload failed",
			"error", err,
			"handler", UploadFile,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":    true,
		"uploadId":   result.UploadID,
		"ipfsHash":   result.IPFSHash,
		"fileName":   result.FileName,
		"fileSize":   result.FileSize,
		"sha256":     result.Fingerprint,
		"gatewayUrl": result.GatewayURL,
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleRegisterContent(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.RegisterContentRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.respond(w, Response{
			Success: false,
			Error:   fmt.Sprintf("missing required information: %v", err),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterContent,
			"request_id", requestId)
		return
	}

	h.logs.Infow("registration request received",
		"title", request.Title,
		"ipfsHash", request.IPFSHash,
		"txHash", request.TxHash,
		"handler", RegisterContent,
		"request_id", requestId)

	contentId, err := h.registry.RegisterContent(r.Context(), request.ToMessage())
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("content registration failed",
			"error", err,
			"handler", RegisterContent,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":   true,
		"contentId": contentId,
		"message":   "Content registered successfully",
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleUserContent(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address := r.PathValue("address")
	contents, err := h.registry.UserContent(r.Context(), address)
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to get user content",
			"error", err,
			"handler", UserContent,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":  true,
		"contents": contents,
		"total":    len(contents),
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleMarketplace(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	contents, err := h.registry.Marketplace(r.Context())
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to get marketplace content",
			"error", err,
			"handler", Marketplace,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":  true,
		"contents": contents,
		"total":    len(contents),
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var request payload.RecordTransactionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &request); err != nil {
		h.respond(w, Response{
			Success: false,
			Error:   fmt.Sprintf("missing required information: %v", err),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RecordTransaction,
			"request_id", requestId)
		return
	}

	transactionId, err := h.registry.RecordTransaction(r.Context(), request.ToMessage())
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to record transaction",
			"error", err,
			"handler", RecordTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":       true,
		"transactionId": transactionId,
		"message":       "Transaction recorded successfully",
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleUploadStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	upload, err := h.registry.UploadStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		code, message := h.errorStatus(err)
		if code == http.StatusNotFound {
			message = "Upload record not found"
		}
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to get upload status",
			"error", err,
			"handler", UploadStatus,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"upload":  upload,
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	report := h.registry.Health(r.Context())
	h.respond(w, report, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleUserStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.registry.UserStats(r.Context(), r.PathValue("address"))
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to get user stats",
			"error", err,
			"handler", UserStats,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"stats":   stats,
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleGlobalStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.registry.GlobalStats(r.Context())
	if err != nil {
		code, message := h.errorStatus(err)
		h.respond(w, Response{Success: false, Error: message}, code, requestId)
		h.logs.Errorw("failed to get global stats",
			"error", err,
			"handler", GlobalStats,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"stats":   stats,
	}, http.StatusOK, requestId)
}

// HandleNotFound answers every unregistered API path with a JSON body
// instead of the default plain-text 404.
func (h *RegistryHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	h.respond(w, Response{Success: false, Error: "API endpoint not found"}, http.StatusNotFound, requestId)
}

func (h *RegistryHandler) errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrMissingInput),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrUnknownTransactionType),
		errors.Is(err, core.ErrDuplicateContent):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrUploadNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func (h *RegistryHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func mimeTypeAllowed(mimeType string) bool {
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}

func requestID(r *http.Request) string {
	if id := r.Context().Value(middleware.RequestIDKey); id != nil {
		return id.(string)
	}
	return ""
}
