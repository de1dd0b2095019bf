package ethereum

import (
	"context"
	"errors"
	"fmt"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrNotConfirmed means the transaction is not yet included in a block. The
// caller is expected to ask again later.
var ErrNotConfirmed error = errors.New("transaction not confirmed yet")

// NodeService reads transaction confirmations from an Ethereum node. It
// never submits transactions: registrations are signed and broadcast by the
// owner's wallet, this service only observes the outcome.
type NodeService struct {
	client EthClient
}

func NewNodeService(ethClient EthClient) *NodeService {
	return &NodeService{
		client: ethClient,
	}
}

func (s *NodeService) Confirm(ctx context.Context, txHash string) (*Confirmation, error) {
	hash := common.HexToHash(txHash)

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, ErrNotConfirmed
		}
		return nil, fmt.Errorf("fetching receipt %q: %w", txHash, err)
	}

	return &Confirmation{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
	}, nil
}

func (s *NodeService) Healthy(ctx context.Context) error {
	if _, err := s.client.NetworkID(ctx); err != nil {
		return fmt.Errorf("ethereum node ping: %w", err)
	}
	return nil
}
