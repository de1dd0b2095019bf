package ipfs

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var ErrEmptyPayload error = errors.New("empty file payload")
var ErrAddressMismatch error = errors.New("storage network returned a different content address")

// StoredObject describes one successfully stored byte buffer.
type StoredObject struct {
	CID         string
	Fingerprint string
	GatewayURL  string
	Size        int64
}

// Service is the storage gateway: it stages a byte buffer on disk, ships it
// to the pinning service and hands back a content address that is verified
// against a local computation of the same address.
type Service struct {
	pinner         Pinner
	gatewayPattern string
	stagingDir     string
}

func NewService(pinner Pinner, gatewayPattern, stagingDir string) *Service {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &Service{
		pinner:         pinner,
		gatewayPattern: gatewayPattern,
		stagingDir:     stagingDir,
	}
}

// Store uploads data under an advisory file name. The staging file is
// removed on every exit path, success or not.
func (s *Service) Store(ctx context.Context, data []byte, fileName string) (StoredObject, error) {
	if len(data) == 0 {
		return StoredObject{}, ErrEmptyPayload
	}

	localCid, err := SumCid(data)
	if err != nil {
		return StoredObject{}, fmt.Errorf("compute content address: %w", err)
	}

	staged, err := s.stage(data)
	if err != nil {
		return StoredObject{}, err
	}
	defer os.Remove(staged)

	resp, err := s.pinner.AddFile(ctx, staged, fileName)
	if err != nil {
		return StoredObject{}, fmt.Errorf("add content: %w", err)
	}

	// A service that wraps uploads in a directory would report a different
	// address than the one derivable from the bytes. Recording such an
	// address would break independent verification, so it is refused.
	address := resp.Cid
	if address == "" {
		address = localCid.String()
	} else if address != localCid.String() {
		return StoredObject{}, fmt.Errorf("%w: reported %s, computed %s", ErrAddressMismatch, address, localCid)
	}

	return StoredObject{
		CID:         address,
		Fingerprint: Fingerprint(data),
		GatewayURL:  fmt.Sprintf(s.gatewayPattern, address),
		Size:        int64(len(data)),
	}, nil
}

func (s *Service) Healthy(ctx context.Context) error {
	if err := s.pinner.Ping(ctx); err != nil {
		return fmt.Errorf("storage service ping: %w", err)
	}
	return nil
}

func (s *Service) stage(data []byte) (string, error) {
	tmp, err := os.CreateTemp(s.stagingDir, "drm-upload-*")
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write staging file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close staging file: %w", err)
	}

	return tmp.Name(), nil
}
