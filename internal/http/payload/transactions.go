package payload

import (
	"github.com/jellydator/validation"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
)

type RecordTransactionRequest struct {
	Type        string `json:"type"`
	UserAddress string `json:"userAddress"`
	ContentID   string `json:"contentId"`
	TxHash      string `json:"txHash"`
	Amount      string `json:"amount"`
	BlockNumber int64  `json:"blockNumber"`
	GasUsed     int64  `json:"gasUsed"`
}

func (t RecordTransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Type, validation.Required, validation.In("register", "purchase", "license")),
		validation.Field(&t.UserAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (t RecordTransactionRequest) ToMessage() core.TransactionMessage {
	return core.TransactionMessage{
		Type:        t.Type,
		UserAddress: t.UserAddress,
		ContentID:   t.ContentID,
		TxHash:      t.TxHash,
		Amount:      t.Amount,
		BlockNumber: t.BlockNumber,
		GasUsed:     t.GasUsed,
	}
}
